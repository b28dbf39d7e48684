package store

import (
	"context"
	"testing"

	radix "github.com/mediocregopher/radix/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStubRedis returns a radix connection backed by an in-memory map
func newStubRedis(t *testing.T) (radix.Conn, map[string]string) {
	t.Helper()
	data := make(map[string]string)
	conn := radix.Stub("tcp", "127.0.0.1:6379", func(args []string) interface{} {
		switch args[0] {
		case "GET":
			v, ok := data[args[1]]
			if !ok {
				return nil
			}
			return v
		case "SET":
			data[args[1]] = args[2]
			return "OK"
		}
		return nil
	})
	t.Cleanup(func() { conn.Close() })
	return conn, data
}

func TestRedisSnapshotStore_LoadMissing(t *testing.T) {
	conn, _ := newStubRedis(t)
	s := NewRedisSnapshotStore(conn, "")

	data, ok, err := s.Load(context.Background(), KeyCart)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestRedisSnapshotStore_SaveAndLoad(t *testing.T) {
	conn, raw := newStubRedis(t)
	s := NewRedisSnapshotStore(conn, "")
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, KeyCart, []byte(`[{"product_id":2}]`)))

	// Keys are namespaced with the default prefix
	assert.Equal(t, `[{"product_id":2}]`, raw[DefaultRedisKeyPrefix+KeyCart])

	data, ok, err := s.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"product_id":2}]`, string(data))
}

func TestRedisSnapshotStore_CustomPrefix(t *testing.T) {
	conn, raw := newStubRedis(t)
	s := NewRedisSnapshotStore(conn, "shop-a:")

	require.NoError(t, s.Save(context.Background(), KeyUsers, []byte(`[]`)))

	_, ok := raw["shop-a:"+KeyUsers]
	assert.True(t, ok)
}
