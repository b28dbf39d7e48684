// Package state loads and saves store collections through the snapshot boundary.
package state

import (
	"context"
	"encoding/json"

	"github.com/example/storefront/internal/infrastructure/store"
	"github.com/rs/zerolog/log"
)

// Load decodes the document stored under key. It reports false when the document is
// missing, unreadable or malformed; callers fall back to their defaults.
func Load[T any](ctx context.Context, snapshots store.SnapshotStore, key string) (T, bool) {
	var zero T

	data, ok, err := snapshots.Load(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("component", "state").Str("key", key).Msg("failed to load snapshot, using default")
		return zero, false
	}
	if !ok {
		return zero, false
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn().Err(err).Str("component", "state").Str("key", key).Msg("malformed snapshot, using default")
		return zero, false
	}
	return v, true
}

// Save encodes v and stores it under key. Failures are logged; the in-memory state stays authoritative.
func Save(ctx context.Context, snapshots store.SnapshotStore, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("component", "state").Str("key", key).Msg("failed to marshal snapshot")
		return
	}
	if err := snapshots.Save(ctx, key, data); err != nil {
		log.Error().Err(err).Str("component", "state").Str("key", key).Msg("failed to save snapshot")
	}
}
