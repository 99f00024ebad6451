// Package reconcile implements the idempotent upsert that keeps local rows
// in line with upstream snapshots.
//
// Records are keyed by their upstream identifier, never by the local primary
// key. Updates touch only the columns the sync owns and only when their
// value actually differs, so a repeated run with the same upstream data
// reports every record as unchanged and locally curated columns are never
// overwritten.
package reconcile
