package configs

import "strings"

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Storage selects where the ledgers live. The memory driver keeps
// everything in process and is meant for local runs and demos.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
}

// Normalized returns the lower-cased driver name, defaulting to memory.
func (c Storage) Normalized() string {
	switch d := strings.ToLower(strings.TrimSpace(c.Driver)); d {
	case StoragePostgres:
		return d
	default:
		return StorageMemory
	}
}
