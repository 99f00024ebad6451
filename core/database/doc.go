// Package database provides the GORM connection and schema migration for
// the local store the sync engine reconciles into.
//
// Migrations are additive: AutoMigrate creates missing tables and columns,
// and EnsureColumns applies explicit column additions idempotently, silently
// skipping columns that already exist.
package database
