package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"campaign-ledger/internal/config/configs"
)

// NewRedisClient connects to the Redis server described by cfg. Addr may be
// a redis:// URL or a bare host:port. The connection is verified with a
// ping bounded by a 3 second timeout; on failure the client is closed and
// an error returned.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.Addr)
	if err != nil {
		opts = &redis.Options{Addr: cfg.Addr}
	}
	client := redis.NewClient(opts)

	ctxPing, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err = client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}
