package configs

import "time"

// HTTP defines configuration for the HTTP server. Port selects the
// listening port; the timeouts bound request handling and graceful
// shutdown.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// RequestTimeout caps the time a single request may run, including the
	// wait for a collaboration lock.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	// ShutdownTimeout is how long in-flight requests get to finish after a
	// termination signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}
