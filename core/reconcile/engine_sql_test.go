package reconcile

import (
	"context"
	"testing"

	"boardsync/core/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gormDB, mock
}

// The UPDATE statement may only name sync-owned columns. Curated columns
// stay out of the SET clause entirely rather than being written back with
// their current values.
func TestUpsert_UpdateStatementExcludesCuratedColumns(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{
		"id", "external_code", "name", "department", "work_location",
		"employment_status", "active", "show_on_board", "may_drive_vehicles", "has_key",
	}).AddRow(5, 42, "Anna Berg", "Montage", "field", "active", true, true, true, true)

	mock.ExpectQuery("SELECT \\* FROM `employees` WHERE external_code = \\?").
		WillReturnRows(rows)

	mock.ExpectExec("UPDATE `employees` SET `department`=\\? WHERE id = \\?").
		WithArgs("Lager", uint(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := Upsert(context.Background(), db, &models.Employee{
		ExternalCode: 42,
		Name:         "Anna Berg",
		Department:   "Lager",
		WorkLocation: models.LocationField,
		Active:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, ActionUpdated, res.Action)
	assert.Equal(t, 1, res.Changes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
