package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemorySnapshotStore keeps snapshots in process memory. State survives only as long as the process.
type MemorySnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]Snapshot
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{
		snapshots: make(map[string]Snapshot),
	}
}

// Load returns a copy of the stored document
func (s *MemorySnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.snapshots[key]
	if !ok {
		return nil, false, nil
	}
	data := make([]byte, len(snapshot.State))
	copy(data, snapshot.State)
	return data, true, nil
}

// Save stores a copy of data under key
func (s *MemorySnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	state := make([]byte, len(data))
	copy(state, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[key] = Snapshot{
		Key:       key,
		State:     state,
		UpdatedAt: time.Now(),
	}
	return nil
}

// Keys returns the stored keys in sorted order
func (s *MemorySnapshotStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.snapshots))
	for key := range s.snapshots {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
