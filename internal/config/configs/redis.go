package configs

import "time"

// Redis configures the release receipt cache. Leaving Address empty
// disables the cache.
type Redis struct {
	// Address is either host:port or a redis:// URL.
	Address    string        `env:"ADDRESS"`
	ReceiptTTL time.Duration `env:"RECEIPT_TTL" envDefault:"24h"`
}

// Enabled reports whether a Redis address was configured.
func (c Redis) Enabled() bool {
	return c.Address != ""
}
