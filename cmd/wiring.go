package cmd

import (
	"context"

	"boardsync/core/config"
	"boardsync/core/erp"
	"boardsync/core/joblock"
	"boardsync/core/storage"
	"boardsync/feature/absence"
	"boardsync/feature/events"
	"boardsync/feature/fleet"
	"boardsync/feature/roster"
	syncfeature "boardsync/feature/sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// buildSyncService wires the ERP client, the optional snapshot archive,
// the run guard, and the per-entity sync services into the orchestrator.
func buildSyncService(cfg *config.Config, db *gorm.DB, logg *zap.Logger) (*syncfeature.Service, error) {
	client := erp.New(cfg.ERP, logg)

	// Snapshot archiving is optional; without a storage endpoint the
	// client simply keeps no audit trail.
	if cfg.Storage.Enabled() {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		archiver := storage.NewArchiver(store, cfg.Storage.Bucket)
		if err := archiver.EnsureBucket(context.Background()); err != nil {
			return nil, err
		}
		client.SetArchiver(archiver)
		logg.Info("Snapshot archiving enabled", zap.String("bucket", cfg.Storage.Bucket))
	}

	var guard joblock.Guard
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		guard = joblock.NewRedis(rdb)
		logg.Info("Using Redis run guard", zap.String("addr", cfg.Redis.Addr))
	} else {
		guard = joblock.NewLocal()
	}

	return syncfeature.NewService(
		roster.NewService(client, db, logg),
		fleet.NewService(client, db, logg),
		events.NewService(client, db, logg),
		absence.NewService(client, db, logg, cfg.Sync.WalkLimitDays),
		guard,
		logg,
	), nil
}
