package store

import "context"

// SnapshotStore is the key-value persistence boundary. Each key holds one JSON document.
type SnapshotStore interface {
	// Load returns the document stored under key. The bool is false when nothing is stored.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save replaces the document stored under key.
	Save(ctx context.Context, key string, data []byte) error
}
