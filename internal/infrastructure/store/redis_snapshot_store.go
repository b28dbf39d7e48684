package store

import (
	"context"
	"fmt"

	radix "github.com/mediocregopher/radix/v3"
)

// DefaultRedisKeyPrefix namespaces snapshot keys in a shared Redis
const DefaultRedisKeyPrefix = "storefront:snapshot:"

// RedisSnapshotStore implements SnapshotStore with plain GET/SET
type RedisSnapshotStore struct {
	client radix.Client
	prefix string
}

func NewRedisSnapshotStore(client radix.Client, prefix string) *RedisSnapshotStore {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &RedisSnapshotStore{client: client, prefix: prefix}
}

// ConnectRedis opens a small connection pool
func ConnectRedis(addr string) (radix.Client, error) {
	pool, err := radix.NewPool("tcp", addr, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}
	return pool, nil
}

func (s *RedisSnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	mn := radix.MaybeNil{Rcv: &data}
	if err := s.client.Do(radix.Cmd(&mn, "GET", s.prefix+key)); err != nil {
		return nil, false, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	if mn.Nil {
		return nil, false, nil
	}
	return data, true, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Do(radix.FlatCmd(nil, "SET", s.prefix+key, data)); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}
