// Package utils provides small conversion helpers shared by the sync
// engine, mostly for normalizing the loosely typed values that come back
// from database scans before comparing them with desired column values.
package utils
