package server

import "context"

// Server is the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until ctx ends or a stop signal arrives,
	// then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops the server, waiting for in-flight requests until ctx
	// ends.
	Shutdown(ctx context.Context) error
}
