package absence

import (
	"context"
	"time"

	"boardsync/core/calendar"
	"boardsync/core/erp"
	"boardsync/core/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Kind couples an absence kind with the employment status it drives.
type Kind struct {
	Name   string
	Status string
}

// The two absence kinds the synchronizer runs for.
var (
	Vacation = Kind{Name: models.KindVacation, Status: models.StatusOnVacation}
	Sickness = Kind{Name: models.KindSickness, Status: models.StatusSick}
)

// Summary reports one synchronizer run.
type Summary struct {
	// Processed is the number of roster employees examined.
	Processed int `json:"processed"`
	// Absent is the number of employees currently in this absence state.
	Absent int `json:"absent"`
	// Errors counts per-employee failures that did not abort the run.
	Errors int `json:"errors"`
}

// Service drives employment status and absence records from the upstream
// absence collections.
type Service struct {
	api      erp.API
	db       *gorm.DB
	logger   *zap.Logger
	calendar *calendar.Calendar

	// walkLimit caps the consecutive-absence walk, in calendar days.
	walkLimit int

	// nowFn is swappable for tests.
	nowFn func() time.Time
}

// NewService creates a new absence service. A non-positive walkLimit
// falls back to the calendar default.
func NewService(api erp.API, db *gorm.DB, logger *zap.Logger, walkLimit int) *Service {
	return &Service{
		api:       api,
		db:        db,
		logger:    logger,
		calendar:  calendar.New(),
		walkLimit: walkLimit,
		nowFn:     time.Now,
	}
}

// Sync runs the status synchronizer for one absence kind.
//
// It loads the local roster, fetches the kind's entire upstream absence
// collection in one call, and walks each employee: a booking for today
// yields a fresh absence record plus the kind's status, no booking clears
// overlapping records and resets the status — but only from this kind's
// own status, so terminated and the other kind's status are never
// overwritten. For vacation, upstream approval is deliberately ignored.
func (s *Service) Sync(ctx context.Context, kind Kind) (Summary, error) {
	var summary Summary

	employees, err := s.loadRoster(ctx)
	if err != nil {
		return summary, err
	}

	raw, err := s.api.Absences(ctx, kind.Name)
	if err != nil {
		return summary, err
	}
	ledger := calendar.BuildLedger(convertDays(raw))

	today := truncateDay(s.nowFn())

	for _, emp := range employees {
		summary.Processed++
		if ledger.Has(emp.ExternalCode, today) {
			if err := s.markAbsent(ctx, emp, kind, ledger, raw, today); err != nil {
				summary.Errors++
				s.logger.Error("Failed to mark employee absent",
					zap.String("kind", kind.Name),
					zap.Int64("external_code", emp.ExternalCode),
					zap.Error(err),
				)
				continue
			}
			summary.Absent++
		} else {
			if err := s.markPresent(ctx, emp, kind, today); err != nil {
				summary.Errors++
				s.logger.Error("Failed to clear absence",
					zap.String("kind", kind.Name),
					zap.Int64("external_code", emp.ExternalCode),
					zap.Error(err),
				)
			}
		}
	}

	s.logger.Info("Absence sync finished",
		zap.String("kind", kind.Name),
		zap.Int("processed", summary.Processed),
		zap.Int("absent", summary.Absent),
		zap.Int("errors", summary.Errors),
	)
	return summary, nil
}

// loadRoster returns the employees eligible for absence processing:
// known external code, active, and not in the unassigned bucket.
func (s *Service) loadRoster(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	err := s.db.WithContext(ctx).
		Where("external_code > 0 AND active = ? AND department <> ?",
			true, models.DepartmentUnassigned).
		Find(&employees).Error
	return employees, err
}

// markAbsent records the employee's current absence span and moves the
// status to the kind's status.
func (s *Service) markAbsent(ctx context.Context, emp models.Employee, kind Kind, ledger calendar.Ledger, raw []erp.Absence, today time.Time) error {
	span := s.calendar.CountConsecutive(ledger, emp.ExternalCode, today, s.walkLimit)

	end := today
	if !span.LastDate.IsZero() {
		end = span.LastDate
	}

	typeCode := todayTypeCode(raw, emp.ExternalCode, today)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteOverlapping(tx, emp.ID, kind, today); err != nil {
			return err
		}
		record := models.AbsenceRecord{
			EmployeeID: emp.ID,
			Kind:       kind.Name,
			StartDate:  today,
			EndDate:    end,
			Days:       span.Count,
			TypeCode:   typeCode,
			TypeLabel:  Label(typeCode),
			SyncedAt:   s.nowFn(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return s.setStatus(tx, emp, kind.Status)
	})
}

// markPresent clears overlapping records and resets the status to active,
// but only when the employee currently carries this kind's status.
func (s *Service) markPresent(ctx context.Context, emp models.Employee, kind Kind, today time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteOverlapping(tx, emp.ID, kind, today); err != nil {
			return err
		}
		return tx.Model(&models.Employee{}).
			Where("id = ? AND employment_status = ?", emp.ID, kind.Status).
			Update("employment_status", models.StatusActive).Error
	})
}

// setStatus moves the employee into the kind's status. Terminated is
// final and never overwritten; a conflicting status from the other
// absence kind is overwritten but logged, since the outcome depends on
// synchronizer ordering.
func (s *Service) setStatus(tx *gorm.DB, emp models.Employee, status string) error {
	if emp.EmploymentStatus == models.StatusTerminated {
		return nil
	}
	if emp.EmploymentStatus != models.StatusActive && emp.EmploymentStatus != status {
		s.logger.Warn("Overwriting conflicting absence status",
			zap.Int64("external_code", emp.ExternalCode),
			zap.String("from", emp.EmploymentStatus),
			zap.String("to", status),
		)
	}
	return tx.Model(&models.Employee{}).
		Where("id = ? AND employment_status <> ?", emp.ID, models.StatusTerminated).
		Update("employment_status", status).Error
}

// deleteOverlapping removes this kind's absence records touching today.
func deleteOverlapping(tx *gorm.DB, employeeID uint, kind Kind, today time.Time) error {
	return tx.
		Where("employee_id = ? AND kind = ? AND start_date <= ? AND end_date >= ?",
			employeeID, kind.Name, today, today).
		Delete(&models.AbsenceRecord{}).Error
}

// convertDays maps upstream bookings into calendar ledger days. Approval
// is ignored on purpose: unapproved vacation still counts.
func convertDays(raw []erp.Absence) []calendar.Day {
	days := make([]calendar.Day, 0, len(raw))
	for _, a := range raw {
		date := parseDay(a.Date)
		if date.IsZero() {
			continue
		}
		days = append(days, calendar.Day{
			EmployeeCode: a.UserID,
			Date:         date,
			Quantity:     a.Quantity,
		})
	}
	return days
}

// todayTypeCode finds the type code of the employee's booking for today.
func todayTypeCode(raw []erp.Absence, code int64, today time.Time) int {
	for _, a := range raw {
		if a.UserID == code && a.Quantity > 0 && parseDay(a.Date).Equal(today) {
			return a.TypeCode
		}
	}
	return 0
}

func parseDay(raw string) time.Time {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
