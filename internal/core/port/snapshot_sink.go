package port

import (
	"context"
	"errors"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotSink receives a serialized copy of the full campaign collection
// after every ledger mutation. Each write overwrites whatever was stored
// under key before.
type SnapshotSink interface {
	Write(ctx context.Context, key string, payload []byte) error
}

// SnapshotSource reads a snapshot back. Implementations return
// ErrSnapshotNotFound when nothing is stored under key.
type SnapshotSource interface {
	Read(ctx context.Context, key string) ([]byte, error)
}

// SnapshotStore is a sink that can also be read back.
type SnapshotStore interface {
	SnapshotSink
	SnapshotSource
}
