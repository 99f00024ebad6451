// Package joblock guards sync runs against overlap. With Redis configured
// the guard holds a distributed lock so only one instance syncs at a time;
// without it a process-local guard still prevents concurrent runs within a
// single instance.
package joblock
