// Package server holds the HTTP server configuration.
//
// The cmd package handles the actual server startup; this package only
// defines the configuration structure (port and API key) so that
// core/config can embed it alongside the other partial configurations.
package server
