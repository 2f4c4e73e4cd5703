package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-ledger/internal/core/port"
)

func TestSnapshotStore(t *testing.T) {
	s := NewSnapshotStore()
	ctx := context.Background()

	_, err := s.Read(ctx, "k")
	assert.ErrorIs(t, err, port.ErrSnapshotNotFound)

	payload := []byte(`[1]`)
	require.NoError(t, s.Write(ctx, "k", payload))
	payload[1] = '2'

	got, err := s.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got), "store keeps its own copy")

	require.NoError(t, s.Write(ctx, "k", []byte(`[]`)))
	got, err = s.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
	assert.Equal(t, 2, s.Writes())
}
