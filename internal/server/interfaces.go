package server

// Server is the lifecycle contract of the inbound transport.
//
// RunServer blocks until the server is asked to stop; Shutdown drains
// in-flight requests and releases the listener.
type Server interface {
	// RunServer starts serving requests and blocks until shutdown.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
