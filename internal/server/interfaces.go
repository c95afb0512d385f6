package server

import "context"

// Server is the lifecycle contract of the service's transport.
type Server interface {
	// RunServer serves requests until ctx is canceled, then shuts down
	// gracefully and returns.
	RunServer(ctx context.Context)

	// Shutdown stops the server, waiting for in-flight requests to finish.
	Shutdown()
}
