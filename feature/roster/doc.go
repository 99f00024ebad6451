// Package roster syncs the upstream personnel list into the local
// employee table.
//
// Upstream users tagged as resources are skipped here and handled by the
// fleet sync. Department names go through a fixed lookup table with an
// "Unzugeordnet" fallback, and the work location is inferred from keywords
// in the role and department text. The locally curated board flags are
// never written by this sync.
package roster
