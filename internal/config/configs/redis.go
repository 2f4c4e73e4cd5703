package configs

import "time"

// Redis configures the Redis snapshot sink.
type Redis struct {
	// Addr is either a redis:// URL or a host:port pair.
	Addr string `env:"ADDRESS" envDefault:"localhost:6379"`
	// TTL expires stored snapshots. Zero keeps them until overwritten.
	TTL time.Duration `env:"TTL" envDefault:"0s"`
}
