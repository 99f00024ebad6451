// Package absence keeps employment status and absence records in line
// with the upstream vacation and sickness collections.
//
// The synchronizer runs once per kind. Each run fetches the kind's whole
// absence collection in a single call, checks every roster employee for a
// booking on the current day, and either records the computed consecutive
// span and sets the kind's status, or clears stale records and resets the
// status to active. Status resets only apply from the kind's own status;
// terminated is never touched.
package absence
