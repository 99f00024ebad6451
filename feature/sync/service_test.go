package sync

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"boardsync/core/erp"
	"boardsync/core/joblock"
	"boardsync/core/models"
	"boardsync/feature/absence"
	"boardsync/feature/events"
	"boardsync/feature/fleet"
	"boardsync/feature/roster"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubAPI struct{}

func (stubAPI) Users(context.Context) ([]erp.User, error) {
	return []erp.User{
		{ID: 1, FirstName: "Anna", LastName: "Berg", Department: "Montage", Active: true},
		{ID: 2, FirstName: "Sprinter 316 / HH-AB 123", UserType: erp.UserTypeResource},
	}, nil
}

func (stubAPI) ProjectGroups(context.Context) ([]erp.ProjectGroup, error) {
	return []erp.ProjectGroup{{ID: 1, Name: "Veranstaltungen 2026"}}, nil
}

func (stubAPI) Projects(context.Context) ([]erp.Project, error) {
	return []erp.Project{
		{ID: 10, GroupID: 1, Name: "Messe Hamburg", StartDate: "2026-09-10", EndDate: "2026-09-14"},
	}, nil
}

func (stubAPI) Absences(context.Context, string) ([]erp.Absence, error) {
	return nil, nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Employee{}, &models.Vehicle{}, &models.Event{}, &models.AbsenceRecord{},
	))

	api := stubAPI{}
	logg := zap.NewNop()
	return NewService(
		roster.NewService(api, db, logg),
		fleet.NewService(api, db, logg),
		events.NewService(api, db, logg),
		absence.NewService(api, db, logg, 0),
		joblock.NewLocal(),
		logg,
	)
}

func TestRun_FullCoversAllPhases(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Run(context.Background(), PhaseFull)
	require.NoError(t, err)

	for _, phase := range []string{PhaseRoster, PhaseFleet, PhaseEvents, PhaseVacation, PhaseSickness} {
		assert.Contains(t, result, phase)
	}
}

func TestRun_UnknownPhase(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Run(context.Background(), "everything")
	assert.Error(t, err)
}

func TestRun_BusyGuard(t *testing.T) {
	svc := newTestService(t)

	release, err := svc.guard.Acquire(context.Background(), lockKey, time.Minute)
	require.NoError(t, err)
	defer release()

	_, err = svc.Run(context.Background(), PhaseRoster)
	assert.ErrorIs(t, err, joblock.ErrBusy)
}

func TestHandler_ConflictWhileRunning(t *testing.T) {
	svc := newTestService(t)
	app := fiber.New()
	require.NoError(t, NewFeature(svc, zap.NewNop()).Load(app))

	release, err := svc.guard.Acquire(context.Background(), lockKey, time.Minute)
	require.NoError(t, err)
	defer release()

	resp, err := app.Test(httptest.NewRequest("POST", "/sync/roster", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestHandler_ReturnsSummaries(t *testing.T) {
	svc := newTestService(t)
	app := fiber.New()
	require.NoError(t, NewFeature(svc, zap.NewNop()).Load(app))

	resp, err := app.Test(httptest.NewRequest("POST", "/sync/roster", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]map[string]any
	require.NoError(t, json.Unmarshal(body, &result))
	require.Contains(t, result, PhaseRoster)
	assert.EqualValues(t, 1, result[PhaseRoster]["created"])
	assert.EqualValues(t, 1, result[PhaseRoster]["skipped"])
}
