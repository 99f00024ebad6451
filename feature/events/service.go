package events

import (
	"context"
	"time"

	"boardsync/core/erp"
	"boardsync/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service reconciles qualifying upstream projects into the local event
// table.
type Service struct {
	api    erp.API
	db     *gorm.DB
	logger *zap.Logger

	// nowFn is swappable for tests.
	nowFn func() time.Time
}

// NewService creates a new events service.
func NewService(api erp.API, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		api:    api,
		db:     db,
		logger: logger,
		nowFn:  time.Now,
	}
}

// Sync fetches all project groups and projects, keeps projects in event
// groups that pass validation, and upserts them. Both bulk fetches are
// fail-fast; per-project failures are counted.
func (s *Service) Sync(ctx context.Context) (reconcile.Summary, error) {
	var summary reconcile.Summary

	groups, err := s.api.ProjectGroups(ctx)
	if err != nil {
		return summary, err
	}

	eventGroups := make(map[int64]struct{})
	for _, g := range groups {
		if IsEventGroup(g) {
			eventGroups[g.ID] = struct{}{}
		}
	}

	projects, err := s.api.Projects(ctx)
	if err != nil {
		return summary, err
	}

	now := s.nowFn()
	for _, p := range projects {
		if _, ok := eventGroups[p.GroupID]; !ok {
			summary.Skipped++
			continue
		}
		if reason := ValidateProject(p, now); reason != "" {
			summary.Skipped++
			s.logger.Debug("Project rejected",
				zap.Int64("project", p.ID),
				zap.String("reason", reason),
			)
			continue
		}

		res, err := reconcile.Upsert(ctx, s.db, ConvertEvent(p))
		if err != nil {
			summary.Errors++
			s.logger.Error("Failed to upsert event",
				zap.Int64("external_code", p.ID),
				zap.Error(err),
			)
			continue
		}
		summary.Add(res)
	}

	s.logger.Info("Event sync finished",
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("unchanged", summary.Unchanged),
		zap.Int("skipped", summary.Skipped),
		zap.Int("errors", summary.Errors),
	)
	return summary, nil
}
