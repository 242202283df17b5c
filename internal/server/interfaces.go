package server

// Server is the API process: the loopback listener plus the background
// workers.
type Server interface {
	// RunServer blocks until a stop signal arrives or the listener fails.
	RunServer()

	// Shutdown stops accepting requests and drains the open ones.
	Shutdown()

	// Addr is the bound listen address.
	Addr() string
}
