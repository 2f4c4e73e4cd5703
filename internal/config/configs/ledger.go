package configs

import (
	"fmt"
	"strings"
)

const (
	SinkMemory   = "memory"
	SinkRedis    = "redis"
	SinkPostgres = "postgres"
)

// Ledger configures the campaign ledger and where its snapshots go.
type Ledger struct {
	// Sink selects the snapshot sink: memory, redis or postgres.
	Sink string `env:"SINK" envDefault:"memory"`
	// Key is the key snapshots are written under.
	Key string `env:"KEY" envDefault:"campaings"`
	// Rehydrate restores the ledger from the sink on startup.
	Rehydrate bool `env:"REHYDRATE" envDefault:"false"`
	// Seed adds the demo campaigns when the ledger starts empty.
	Seed bool `env:"SEED" envDefault:"true"`
	// SeedFile replaces the embedded demo campaigns with a YAML file.
	SeedFile string `env:"SEED_FILE"`
}

// SinkKind normalises Sink and rejects unknown values.
func (c Ledger) SinkKind() (string, error) {
	switch s := strings.ToLower(strings.TrimSpace(c.Sink)); s {
	case "", SinkMemory:
		return SinkMemory, nil
	case SinkRedis, SinkPostgres:
		return s, nil
	default:
		return "", fmt.Errorf("unknown ledger sink %q", c.Sink)
	}
}
