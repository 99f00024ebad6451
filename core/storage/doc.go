// Package storage provides the object storage client used to archive raw
// upstream ERP payloads.
//
// The sync engine keeps no historical absence ledger locally, and the
// upstream lookup tables (absence type codes, custom field definitions) are
// externally defined. Archiving the raw bulk responses per run gives
// operators something to audit against when a mapping turns out to be wrong.
//
// Archiving is optional: when no storage endpoint is configured the ERP
// client simply skips it.
package storage
