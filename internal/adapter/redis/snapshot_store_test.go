package redisadapter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-ledger/internal/core/port"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	client, mr := setupTestRedis(t)
	s := NewSnapshotStore(client, 0)
	ctx := context.Background()

	_, err := s.Read(ctx, "campaings")
	assert.ErrorIs(t, err, port.ErrSnapshotNotFound)

	require.NoError(t, s.Write(ctx, "campaings", []byte(`[{"name":"A"}]`)))
	require.NoError(t, s.Write(ctx, "campaings", []byte(`[]`)))

	got, err := s.Read(ctx, "campaings")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	raw, err := mr.Get("campaings")
	require.NoError(t, err)
	assert.Equal(t, `[]`, raw)
	assert.Zero(t, mr.TTL("campaings"))
}

func TestSnapshotStoreTTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	s := NewSnapshotStore(client, time.Hour)

	require.NoError(t, s.Write(context.Background(), "k", []byte(`[]`)))
	assert.Equal(t, time.Hour, mr.TTL("k"))

	mr.FastForward(2 * time.Hour)
	_, err := s.Read(context.Background(), "k")
	assert.ErrorIs(t, err, port.ErrSnapshotNotFound)
}

func TestSnapshotStoreUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	s := NewSnapshotStore(client, 0)
	assert.Error(t, s.Write(context.Background(), "k", []byte(`[]`)))
}
