package roster

import (
	"context"
	"testing"

	"boardsync/core/erp"
	"boardsync/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubAPI struct {
	users []erp.User
	err   error
}

func (s *stubAPI) Users(context.Context) ([]erp.User, error) { return s.users, s.err }
func (s *stubAPI) ProjectGroups(context.Context) ([]erp.ProjectGroup, error) {
	return nil, nil
}
func (s *stubAPI) Projects(context.Context) ([]erp.Project, error) { return nil, nil }
func (s *stubAPI) Absences(context.Context, string) ([]erp.Absence, error) {
	return nil, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Employee{}))
	return db
}

func TestSync_SkipsResources(t *testing.T) {
	db := newTestDB(t)
	api := &stubAPI{users: []erp.User{
		{ID: 1, FirstName: "Anna", LastName: "Berg", Active: true},
		{ID: 2, FirstName: "Sprinter", UserType: erp.UserTypeResource},
	}}

	svc := NewService(api, db, zap.NewNop())
	summary, err := svc.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Skipped)

	var count int64
	require.NoError(t, db.Model(&models.Employee{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSync_CuratedFlagsSurviveResync(t *testing.T) {
	db := newTestDB(t)
	api := &stubAPI{users: []erp.User{
		{ID: 1, FirstName: "Anna", LastName: "Berg", Department: "Montage", Active: true},
	}}
	svc := NewService(api, db, zap.NewNop())

	_, err := svc.Sync(context.Background())
	require.NoError(t, err)

	// Board operator curates the employee between runs.
	err = db.Model(&models.Employee{}).
		Where("external_code = ?", 1).
		Updates(map[string]any{"show_on_board": true, "has_key": true}).Error
	require.NoError(t, err)

	// Upstream renames the employee.
	api.users[0].LastName = "Berg-Schmidt"
	summary, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)

	var emp models.Employee
	require.NoError(t, db.Where("external_code = ?", 1).Take(&emp).Error)
	assert.Equal(t, "Anna Berg-Schmidt", emp.Name)
	assert.True(t, emp.ShowOnBoard)
	assert.True(t, emp.HasKey)
}

func TestSync_TerminationIsOneWay(t *testing.T) {
	db := newTestDB(t)
	api := &stubAPI{users: []erp.User{
		{ID: 1, FirstName: "Anna", LastName: "Berg", Active: true},
	}}
	svc := NewService(api, db, zap.NewNop())

	_, err := svc.Sync(context.Background())
	require.NoError(t, err)

	api.users[0].Terminated = true
	_, err = svc.Sync(context.Background())
	require.NoError(t, err)

	var emp models.Employee
	require.NoError(t, db.Where("external_code = ?", 1).Take(&emp).Error)
	assert.Equal(t, models.StatusTerminated, emp.EmploymentStatus)
	assert.False(t, emp.Active)

	// A later sync without the termination flag must not reactivate the
	// status.
	api.users[0].Terminated = false
	_, err = svc.Sync(context.Background())
	require.NoError(t, err)
	require.NoError(t, db.Where("external_code = ?", 1).Take(&emp).Error)
	assert.Equal(t, models.StatusTerminated, emp.EmploymentStatus)
}

func TestSync_FetchFailureIsFatal(t *testing.T) {
	db := newTestDB(t)
	api := &stubAPI{err: assert.AnError}
	svc := NewService(api, db, zap.NewNop())

	_, err := svc.Sync(context.Background())
	assert.Error(t, err)
}
