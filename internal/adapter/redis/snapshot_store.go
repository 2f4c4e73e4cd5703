package redisadapter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"campaign-ledger/internal/core/port"
)

// SnapshotStore implements port.SnapshotStore on top of a Redis string
// key. Each write replaces the previous value.
type SnapshotStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewSnapshotStore returns a store writing through client. A zero ttl
// keeps snapshots until overwritten.
func NewSnapshotStore(client redis.Cmdable, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{client: client, ttl: ttl}
}

func (s *SnapshotStore) Write(ctx context.Context, key string, payload []byte) error {
	return s.client.Set(ctx, key, payload, s.ttl).Err()
}

func (s *SnapshotStore) Read(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}
