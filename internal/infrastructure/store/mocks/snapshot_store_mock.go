package mocks

import (
	"context"
	"sync"
)

// MockSnapshotStore is a mock implementation of store.SnapshotStore for testing
type MockSnapshotStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// For tracking calls in tests
	LoadCalls []string
	SaveCalls []SaveCall

	LoadErr error
	SaveErr error
}

// SaveCall records parameters passed to Save
type SaveCall struct {
	Key  string
	Data []byte
}

// NewMockSnapshotStore creates a new MockSnapshotStore
func NewMockSnapshotStore() *MockSnapshotStore {
	return &MockSnapshotStore{
		data:      make(map[string][]byte),
		LoadCalls: make([]string, 0),
		SaveCalls: make([]SaveCall, 0),
	}
}

// Load returns the stored document
func (m *MockSnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LoadCalls = append(m.LoadCalls, key)

	if m.LoadErr != nil {
		return nil, false, m.LoadErr
	}
	data, ok := m.data[key]
	return data, ok, nil
}

// Save stores the document unless SaveErr is set
func (m *MockSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveCalls = append(m.SaveCalls, SaveCall{Key: key, Data: data})

	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.data[key] = data
	return nil
}

// SavesFor returns the recorded Save calls for key
func (m *MockSnapshotStore) SavesFor(key string) []SaveCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var calls []SaveCall
	for _, c := range m.SaveCalls {
		if c.Key == key {
			calls = append(calls, c)
		}
	}
	return calls
}

// Reset clears all data and recorded calls
func (m *MockSnapshotStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]byte)
	m.LoadCalls = make([]string, 0)
	m.SaveCalls = make([]SaveCall, 0)
	m.LoadErr = nil
	m.SaveErr = nil
}

// SetData sets a document directly for testing
func (m *MockSnapshotStore) SetData(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
}

// GetData gets a document directly for testing (without recording the call)
func (m *MockSnapshotStore) GetData(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[key]
	return data, ok
}
