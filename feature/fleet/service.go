package fleet

import (
	"context"

	"boardsync/core/erp"
	"boardsync/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service reconciles upstream resources into the local vehicle table.
type Service struct {
	api    erp.API
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new fleet service.
func NewService(api erp.API, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		api:    api,
		db:     db,
		logger: logger,
	}
}

// Sync pulls the roster and upserts every record classified as a vehicle.
// Employees and rooms are skipped; rooms are never persisted.
func (s *Service) Sync(ctx context.Context) (reconcile.Summary, error) {
	var summary reconcile.Summary

	users, err := s.api.Users(ctx)
	if err != nil {
		return summary, err
	}

	for _, u := range users {
		if Classify(u) != KindVehicle {
			summary.Skipped++
			continue
		}

		res, err := reconcile.Upsert(ctx, s.db, ConvertVehicle(u))
		if err != nil {
			summary.Errors++
			s.logger.Error("Failed to upsert vehicle",
				zap.Int64("external_code", u.ID),
				zap.Error(err),
			)
			continue
		}
		summary.Add(res)
	}

	s.logger.Info("Fleet sync finished",
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("unchanged", summary.Unchanged),
		zap.Int("skipped", summary.Skipped),
		zap.Int("errors", summary.Errors),
	)
	return summary, nil
}
