package database

import (
	"fmt"

	"boardsync/core/models"

	"gorm.io/gorm"
)

// ColumnSpec describes one additive column migration.
type ColumnSpec struct {
	// Column is the column name.
	Column string
	// Type is the SQL column type, dialect-appropriate.
	Type string
	// Default is the literal DEFAULT clause value, or "NULL" for none.
	Default string
}

// Migrate creates or updates the local schema for all synced entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Employee{},
		&models.Vehicle{},
		&models.Event{},
		&models.AbsenceRecord{},
	)
}

// EnsureColumns adds the given columns to a table if they are missing.
// Columns that already exist are skipped silently, so the migration can run
// on every start.
func EnsureColumns(db *gorm.DB, tableName string, specs []ColumnSpec) ([]string, error) {
	var changes []string

	for _, spec := range specs {
		if db.Migrator().HasColumn(tableName, spec.Column) {
			continue
		}

		defaultClause := ""
		if spec.Default != "" && spec.Default != "NULL" {
			defaultClause = fmt.Sprintf(" DEFAULT %s", spec.Default)
		}

		alterSQL := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s%s",
			tableName, spec.Column, spec.Type, defaultClause)

		if err := db.Exec(alterSQL).Error; err != nil {
			return changes, fmt.Errorf("failed to add column %s: %w", spec.Column, err)
		}

		changes = append(changes, fmt.Sprintf("Added column: %s (%s)", spec.Column, spec.Type))
	}

	return changes, nil
}
