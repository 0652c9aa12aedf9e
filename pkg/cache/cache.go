/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cache

import (
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is used when the cache is created with a non-positive default TTL.
const DefaultTTL = 5 * time.Minute

// QueryType identifies the kind of registry query a cache key belongs to.
type QueryType string

const (
	QueryMetadata      QueryType = "metadata"
	QueryIssuer        QueryType = "issuer"
	QueryVerifier      QueryType = "verifier"
	QueryAuthorization QueryType = "auth"
	QueryRecognition   QueryType = "recognition"
)

const keyDelimiter = ":"

// Key builds a cache key from the query type and its parameters. Empty parameters are skipped.
func Key(queryType QueryType, params ...string) string {
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, string(queryType))

	for _, p := range params {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, keyDelimiter)
}

// Cache is an in-process key-value store with per-entry expiry. It is safe for concurrent use.
// Get evicts an expired entry it runs into; the rest are reclaimed by Prune or by the background janitor.
type Cache struct {
	mu         sync.Mutex
	store      *gocache.Cache
	defaultTTL time.Duration
}

// New returns a cache whose entries expire after defaultTTL unless a TTL is given explicitly.
func New(defaultTTL time.Duration) *Cache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	return &Cache{
		store:      gocache.New(defaultTTL, defaultTTL),
		defaultTTL: defaultTTL,
	}
}

// DefaultTTL returns the TTL applied by Set.
func (c *Cache) DefaultTTL() time.Duration {
	return c.defaultTTL
}

// Set stores value under key with the default TTL, replacing any existing entry.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores value under key with the given TTL. A non-positive TTL means the default one.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Set(key, value, ttl)
}

// Get returns the value stored under key if it has not expired yet. An expired entry is evicted.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.store.Get(key)
	if !ok {
		c.store.Delete(key)

		return nil, false
	}

	return v, true
}

// Has reports whether a non-expired value is stored under key.
func (c *Cache) Has(key string) bool {
	_, ok := c.Get(key)

	return ok
}

// Delete removes the entry stored under key.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.store.Flush()
}

// Len returns the number of stored entries, including expired ones not yet pruned.
func (c *Cache) Len() int {
	return c.store.ItemCount()
}

// Prune evicts every expired entry and returns how many were removed.
func (c *Cache) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := c.store.ItemCount()

	c.store.DeleteExpired()

	if removed := before - c.store.ItemCount(); removed > 0 {
		return removed
	}

	return 0
}

// GetAs returns the value stored under key when it exists and has type T.
func GetAs[T any](c *Cache, key string) (T, bool) {
	var zero T

	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}

	typed, ok := v.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}
