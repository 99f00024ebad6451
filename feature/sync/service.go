package sync

import (
	"context"
	"fmt"
	"time"

	"boardsync/core/joblock"
	"boardsync/feature/absence"
	"boardsync/feature/events"
	"boardsync/feature/fleet"
	"boardsync/feature/roster"

	"go.uber.org/zap"
)

// Sync phases in their fixed execution order. The roster runs first so
// the absence phases see the current employee set.
const (
	PhaseRoster   = "roster"
	PhaseFleet    = "fleet"
	PhaseEvents   = "events"
	PhaseVacation = "vacation"
	PhaseSickness = "sickness"
	PhaseFull     = "full"
)

// lockKey serializes all sync runs, manual and scheduled alike.
const lockKey = "boardsync:run"

// lockTTL bounds how long a crashed run can block the next one.
const lockTTL = 15 * time.Minute

// Service orchestrates the sync phases behind the run guard.
type Service struct {
	roster  *roster.Service
	fleet   *fleet.Service
	events  *events.Service
	absence *absence.Service
	guard   joblock.Guard
	logger  *zap.Logger
}

// NewService creates the orchestrator.
func NewService(rosterSvc *roster.Service, fleetSvc *fleet.Service, eventsSvc *events.Service, absenceSvc *absence.Service, guard joblock.Guard, logger *zap.Logger) *Service {
	return &Service{
		roster:  rosterSvc,
		fleet:   fleetSvc,
		events:  eventsSvc,
		absence: absenceSvc,
		guard:   guard,
		logger:  logger,
	}
}

// Run executes one phase (or all of them) under the run guard. It
// returns joblock.ErrBusy when another run is in progress. The result
// maps phase names to their summaries.
func (s *Service) Run(ctx context.Context, phase string) (map[string]any, error) {
	release, err := s.guard.Acquire(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	defer release()

	started := time.Now()
	s.logger.Info("Sync run started", zap.String("phase", phase))

	result := make(map[string]any)
	if err := s.run(ctx, phase, result); err != nil {
		return nil, err
	}

	s.logger.Info("Sync run finished",
		zap.String("phase", phase),
		zap.Duration("took", time.Since(started)),
	)
	return result, nil
}

func (s *Service) run(ctx context.Context, phase string, result map[string]any) error {
	switch phase {
	case PhaseRoster:
		summary, err := s.roster.Sync(ctx)
		if err != nil {
			return err
		}
		result[PhaseRoster] = summary
	case PhaseFleet:
		summary, err := s.fleet.Sync(ctx)
		if err != nil {
			return err
		}
		result[PhaseFleet] = summary
	case PhaseEvents:
		summary, err := s.events.Sync(ctx)
		if err != nil {
			return err
		}
		result[PhaseEvents] = summary
	case PhaseVacation:
		summary, err := s.absence.Sync(ctx, absence.Vacation)
		if err != nil {
			return err
		}
		result[PhaseVacation] = summary
	case PhaseSickness:
		summary, err := s.absence.Sync(ctx, absence.Sickness)
		if err != nil {
			return err
		}
		result[PhaseSickness] = summary
	case PhaseFull:
		// Phases run strictly in sequence; a bootstrap failure in one
		// phase aborts the remainder of the run.
		for _, p := range []string{PhaseRoster, PhaseFleet, PhaseEvents, PhaseVacation, PhaseSickness} {
			if err := s.run(ctx, p, result); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown sync phase %q", phase)
	}
	return nil
}
