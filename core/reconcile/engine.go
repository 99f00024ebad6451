package reconcile

import (
	"context"
	"errors"
	"fmt"

	"boardsync/core/utils"

	"gorm.io/gorm"
)

// Upsert reconciles one record against the database by its external key.
//
// A missing row is inserted. An existing row is compared column by column
// against the record's SyncValues; only columns that actually differ are
// written, and a row that already matches is left untouched. Columns outside
// SyncValues are never part of the update, so replaying the same upstream
// snapshot is a no-op and curated columns keep their local values.
func Upsert(ctx context.Context, db *gorm.DB, rec Record) (Result, error) {
	table := tableOf(db, rec)
	keyCol := rec.KeyColumn()
	key := rec.ExternalKey()

	// Load the current row as a raw map so comparison works the same for
	// every model.
	var current map[string]any
	err := db.WithContext(ctx).Table(table).
		Where(fmt.Sprintf("%s = ?", keyCol), key).
		Take(&current).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.WithContext(ctx).Create(rec).Error; err != nil {
			return Result{}, fmt.Errorf("create %s %d: %w", table, key, err)
		}
		return Result{Action: ActionCreated, ID: rec.PK()}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("load %s %d: %w", table, key, err)
	}

	id := utils.ToUint(current["id"])

	changed := make(map[string]any)
	for column, desired := range rec.SyncValues() {
		if !utils.EqualValue(current[column], desired) {
			changed[column] = desired
		}
	}

	if len(changed) == 0 {
		return Result{Action: ActionUnchanged, ID: id}, nil
	}

	err = db.WithContext(ctx).Table(table).
		Where("id = ?", id).
		Updates(changed).Error
	if err != nil {
		return Result{}, fmt.Errorf("update %s %d: %w", table, key, err)
	}

	return Result{Action: ActionUpdated, ID: id, Changes: len(changed)}, nil
}

// tableOf resolves the record's table name through gorm's naming strategy.
func tableOf(db *gorm.DB, rec Record) string {
	if named, ok := rec.(interface{ TableName() string }); ok {
		return named.TableName()
	}
	return db.NamingStrategy.TableName(fmt.Sprintf("%T", rec))
}
