package events

import (
	"context"
	"testing"
	"time"

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
	groups   []erp.ProjectGroup
	projects []erp.Project
}

func (s *stubAPI) Users(context.Context) ([]erp.User, error) { return nil, nil }
func (s *stubAPI) ProjectGroups(context.Context) ([]erp.ProjectGroup, error) {
	return s.groups, nil
}
func (s *stubAPI) Projects(context.Context) ([]erp.Project, error) { return s.projects, nil }
func (s *stubAPI) Absences(context.Context, string) ([]erp.Absence, error) {
	return nil, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Event{}))
	return db
}

func TestSync_OnlyQualifyingProjectsPersist(t *testing.T) {
	db := newTestDB(t)
	api := &stubAPI{
		groups: []erp.ProjectGroup{
			{ID: 1, Name: "Veranstaltungen 2026"},
			{ID: 2, Name: "Kundenprojekte"},
		},
		projects: []erp.Project{
			{ID: 10, GroupID: 1, Name: "Messe Hamburg Stand 42", StartDate: "2026-09-10", EndDate: "2026-09-14"},
			{ID: 11, GroupID: 1, Name: "Lackierung Stand A", StartDate: "2026-09-10", EndDate: "2026-09-14"},
			{ID: 12, GroupID: 2, Name: "Messe Berlin", StartDate: "2026-10-01", EndDate: "2026-10-03"},
			{ID: 13, GroupID: 1, Name: "Messe Köln", StartDate: "1970-01-01", EndDate: "2026-10-03"},
		},
	}

	svc := NewService(api, db, zap.NewNop())
	svc.nowFn = func() time.Time { return testNow }

	summary, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 3, summary.Skipped)

	var events []models.Event
	require.NoError(t, db.Find(&events).Error)
	require.Len(t, events, 1)
	assert.EqualValues(t, 10, events[0].ExternalCode)
	assert.EqualValues(t, 1, events[0].GroupCode)
}
