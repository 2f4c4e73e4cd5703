package memory

import (
	"context"
	"slices"
	"sync"

	"campaign-ledger/internal/core/port"
)

// SnapshotStore keeps snapshots in process memory. It is the default sink
// for local runs and tests.
type SnapshotStore struct {
	mu     sync.RWMutex
	data   map[string][]byte
	writes int
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{data: make(map[string][]byte)}
}

func (s *SnapshotStore) Write(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = slices.Clone(payload)
	s.writes++
	return nil
}

func (s *SnapshotStore) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.data[key]
	if !ok {
		return nil, port.ErrSnapshotNotFound
	}
	return slices.Clone(payload), nil
}

// Writes reports how many snapshots have been written.
func (s *SnapshotStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
