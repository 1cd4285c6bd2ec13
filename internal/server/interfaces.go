package server

// Server is the lifecycle returned by NewServer.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then
	// drains in-flight requests and returns.
	RunServer()

	// Shutdown makes RunServer drain and return; safe to call before
	// RunServer.
	Shutdown()
}
