// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application; this package only defines the
// listen address and the optional API key guarding the graph and integrity routes.
package server
