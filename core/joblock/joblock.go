package joblock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// ErrBusy means another sync run currently holds the lock.
var ErrBusy = errors.New("joblock: already running")

// Guard serializes sync runs. Acquire returns a release func on success and
// ErrBusy when the key is already held.
type Guard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error)
}

// localGuard is the in-process fallback used when no Redis is configured.
// It protects against overlapping runs within one instance only.
type localGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLocal creates a process-local guard.
func NewLocal() Guard {
	return &localGuard{held: make(map[string]struct{})}
}

func (g *localGuard) Acquire(_ context.Context, key string, _ time.Duration) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.held[key]; busy {
		return nil, ErrBusy
	}
	g.held[key] = struct{}{}
	return func() {
		g.mu.Lock()
		delete(g.held, key)
		g.mu.Unlock()
	}, nil
}

// redisGuard serializes runs across instances via redislock.
type redisGuard struct {
	locker *redislock.Client
}

// NewRedis creates a guard backed by the given Redis client.
func NewRedis(rdb *redis.Client) Guard {
	return &redisGuard{locker: redislock.New(rdb)}
}

func (g *redisGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	lock, err := g.locker.Obtain(ctx, key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrBusy
	}
	if err != nil {
		return nil, err
	}
	return func() {
		// Release on a fresh context so a cancelled run still unlocks.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = lock.Release(releaseCtx)
	}, nil
}
