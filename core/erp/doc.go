// Package erp implements the session manager and request client for the
// upstream ERP system.
//
// # Session lifecycle
//
// The client holds a single bearer token. It authenticates lazily on the
// first request and treats the token as valid until the ERP answers with an
// authorization failure. At that point the token is cleared, authentication
// runs exactly once more and the original call is retried; a second failure
// aborts the run. No proactive refresh is scheduled.
//
// # Response shapes
//
// Bulk endpoints answer either with a bare JSON array or with an object
// wrapping the array under one of several keys. fetchList normalizes all
// observed shapes before the typed fetchers unmarshal them.
//
// # Snapshots
//
// When an archiver is attached, every successful bulk payload is written to
// object storage before being processed, giving each run an audit trail.
package erp
