// Package sync orchestrates the sync phases and exposes their HTTP
// trigger surface.
//
// A full run executes roster, fleet, events, vacation and sickness in
// that fixed order, one record at a time, which keeps the shared ERP
// session consistent and avoids bursting the upstream API. All runs are
// serialized behind a job guard; a trigger that arrives while a run is
// active gets a 409 instead of a second run.
package sync
