package roster

import (
	"context"

	"boardsync/core/erp"
	"boardsync/core/models"
	"boardsync/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service reconciles the upstream roster into the local employee table.
type Service struct {
	api    erp.API
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new roster service.
func NewService(api erp.API, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		api:    api,
		db:     db,
		logger: logger,
	}
}

// Sync pulls the full roster and upserts every ordinary employee. The
// bulk fetch is fail-fast; per-record failures are counted and logged
// but never abort the batch.
func (s *Service) Sync(ctx context.Context) (reconcile.Summary, error) {
	var summary reconcile.Summary

	users, err := s.api.Users(ctx)
	if err != nil {
		return summary, err
	}

	for _, u := range users {
		// Resources (rooms, vehicles) belong to the fleet sync.
		if u.UserType == erp.UserTypeResource {
			summary.Skipped++
			continue
		}

		emp := ConvertEmployee(u)
		res, err := reconcile.Upsert(ctx, s.db, emp)
		if err != nil {
			summary.Errors++
			s.logger.Error("Failed to upsert employee",
				zap.Int64("external_code", u.ID),
				zap.Error(err),
			)
			continue
		}
		summary.Add(res)

		if u.Terminated {
			if err := s.markTerminated(ctx, u.ID); err != nil {
				summary.Errors++
				s.logger.Error("Failed to mark employee terminated",
					zap.Int64("external_code", u.ID),
					zap.Error(err),
				)
			}
		}
	}

	s.logger.Info("Roster sync finished",
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("unchanged", summary.Unchanged),
		zap.Int("skipped", summary.Skipped),
		zap.Int("errors", summary.Errors),
	)
	return summary, nil
}

// markTerminated sets the terminated status. The transition is one-way:
// the guard keeps the update from firing twice, and no sync path ever
// leaves the terminated state again.
func (s *Service) markTerminated(ctx context.Context, code int64) error {
	return s.db.WithContext(ctx).Model(&models.Employee{}).
		Where("external_code = ? AND employment_status <> ?", code, models.StatusTerminated).
		Update("employment_status", models.StatusTerminated).Error
}
