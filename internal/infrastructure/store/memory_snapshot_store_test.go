package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySnapshotStore_LoadMissing(t *testing.T) {
	s := NewMemorySnapshotStore()

	data, ok, err := s.Load(context.Background(), KeyCart)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestMemorySnapshotStore_SaveAndLoad(t *testing.T) {
	s := NewMemorySnapshotStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, KeyCart, []byte(`[{"product_id":1}]`)))

	data, ok, err := s.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"product_id":1}]`, string(data))
}

func TestMemorySnapshotStore_SaveOverwrites(t *testing.T) {
	s := NewMemorySnapshotStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, KeyOrders, []byte(`[]`)))
	require.NoError(t, s.Save(ctx, KeyOrders, []byte(`[{"id":1}]`)))

	data, _, err := s.Load(ctx, KeyOrders)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(data))
	assert.Equal(t, []string{KeyOrders}, s.Keys())
}

func TestMemorySnapshotStore_CopiesData(t *testing.T) {
	s := NewMemorySnapshotStore()
	ctx := context.Background()

	input := []byte(`"abc"`)
	require.NoError(t, s.Save(ctx, KeyCurrentUser, input))
	input[1] = 'z'

	data, _, err := s.Load(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(data))

	// Mutating the returned slice must not affect the stored document
	data[1] = 'y'
	again, _, err := s.Load(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(again))
}

func TestMemorySnapshotStore_Keys(t *testing.T) {
	s := NewMemorySnapshotStore()
	ctx := context.Background()

	for _, key := range []string{KeyUsers, KeyCart, KeyProducts} {
		require.NoError(t, s.Save(ctx, key, []byte(`null`)))
	}

	assert.Equal(t, []string{KeyCart, KeyProducts, KeyUsers}, s.Keys())
}
