package configs

// Telemetry configures OpenTelemetry tracing. Tracing is off unless
// Endpoint is set.
type Telemetry struct {
	// Endpoint is the OTLP/HTTP collector URL, e.g.
	// http://localhost:4318/v1/traces.
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"collabhub"`
}
