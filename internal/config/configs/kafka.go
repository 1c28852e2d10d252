package configs

import "time"

// Kafka configures delivery of lifecycle events. Without brokers the
// outbox relay logs events instead of publishing them.
type Kafka struct {
	Brokers       []string      `env:"BROKERS" envSeparator:","`
	Topic         string        `env:"TOPIC" envDefault:"collabhub.lifecycle"`
	RelayInterval time.Duration `env:"RELAY_INTERVAL" envDefault:"2s"`
	BatchSize     int           `env:"BATCH_SIZE" envDefault:"100"`
}
