// Package server runs the session validator's HTTP server: startup, signal
// handling and graceful shutdown.
package server
