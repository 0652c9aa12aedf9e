/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package responsestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "trust_registry"
	scanBatchSize    = 100
)

type redisClient interface {
	API() redisapi.UniversalClient
}

// Store keeps trust registry responses in redis so that several service instances share one cache.
// Values are stored as JSON under "<prefix>:<key>".
type Store struct {
	redisClient redisClient
	keyPrefix   string
}

// Opt configures the Store.
type Opt func(s *Store)

// WithKeyPrefix sets the namespace of the stored keys.
func WithKeyPrefix(prefix string) Opt {
	return func(s *Store) {
		s.keyPrefix = prefix
	}
}

// New creates a registry response store.
func New(redisClient redisClient, opts ...Opt) *Store {
	s := &Store{
		redisClient: redisClient,
		keyPrefix:   defaultKeyPrefix,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get decodes the stored response into value. It reports false when nothing is stored under key.
func (s *Store) Get(ctx context.Context, key string, value interface{}) (bool, error) {
	b, err := s.redisClient.API().Get(ctx, s.resolveRedisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("redis get response: %w", err)
	}

	if err = json.Unmarshal(b, value); err != nil {
		return false, fmt.Errorf("data decode: %w", err)
	}

	return true, nil
}

func (s *Store) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("data encode: %w", err)
	}

	if err = s.redisClient.API().Set(ctx, s.resolveRedisKey(key), string(b), ttl).Err(); err != nil {
		return fmt.Errorf("redis set response: %w", err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.redisClient.API().Del(ctx, s.resolveRedisKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete response with key[%s]: %w", key, err)
	}

	return nil
}

// Clear removes every response stored under the prefix. Keys of other applications are left alone.
func (s *Store) Clear(ctx context.Context) error {
	api := s.redisClient.API()

	if cluster, ok := api.(*redisapi.ClusterClient); ok {
		return cluster.ForEachMaster(ctx, func(ctx context.Context, node *redisapi.Client) error {
			return s.clear(ctx, node)
		})
	}

	return s.clear(ctx, api)
}

func (s *Store) clear(ctx context.Context, client redisapi.Cmdable) error {
	iter := client.Scan(ctx, 0, s.keyPrefix+":*", scanBatchSize).Iterator()

	var keys []string

	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan responses: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	// one DEL per key: a multi-key DEL fails on a cluster node when keys hash to different slots
	_, err := client.Pipelined(ctx, func(pipe redisapi.Pipeliner) error {
		for _, k := range keys {
			pipe.Del(ctx, k)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("redis clear responses: %w", err)
	}

	return nil
}

func (s *Store) resolveRedisKey(key string) string {
	return s.keyPrefix + ":" + key
}
