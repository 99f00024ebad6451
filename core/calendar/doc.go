// Package calendar implements the business-day calendar and the
// consecutive-absence walk.
//
// A working day is any day that is neither a weekend day nor a recognized
// public holiday. The holiday set combines fixed annual dates with the
// Easter-relative movable holidays, computed per year rather than
// maintained as a literal list.
//
// CountConsecutive walks forward from a reference day through an absence
// ledger: weekends and holidays are skipped without counting and without
// breaking continuity, and the first working day without a booking ends the
// span. The walk is capped at a configurable number of calendar days.
package calendar
