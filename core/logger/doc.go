// Package logger provides a structured logging facility based on Zap.
//
// Every sync phase logs through the same configured logger so that batch
// counters and per-record failures end up in one correlated stream. The
// WithRayID helper extracts the request id from a Fiber context and attaches
// it to the log entry, tying HTTP-triggered sync runs to their log lines.
//
// Configuration:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
package logger
