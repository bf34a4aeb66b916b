// Package memory provides in-process adapters for the arbor ports.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/arbor/pkg/dom"
	"github.com/aretw0/arbor/pkg/domain"
)

type entry struct {
	tree      *dom.Tree
	expiresAt time.Time // zero means never
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Cache implements ports.DocumentCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[string]entry
	ttl  time.Duration
	mu   sync.RWMutex
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithTTL expires entries ttl after they are stored. Zero keeps them forever.
// Expired entries are evicted lazily on Get and Keys.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// NewCache creates a new in-memory cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		data: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Put stores a copy of tree, so later changes by the caller do not leak in.
func (c *Cache) Put(ctx context.Context, key string, tree *dom.Tree) error {
	e := entry{tree: tree.Clone()}
	if c.ttl > 0 {
		e.expiresAt = time.Now().Add(c.ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = e
	return nil
}

// Get returns a copy of the cached tree.
func (c *Cache) Get(ctx context.Context, key string) (*dom.Tree, error) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	if e.expired(time.Now()) {
		c.evict(key)
		return nil, domain.ErrDocumentNotFound
	}
	return e.tree.Clone(), nil
}

// Delete removes the entry.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// Keys returns the live cached keys in sorted order.
func (c *Cache) Keys(ctx context.Context) ([]string, error) {
	now := time.Now()

	c.mu.Lock()
	keys := make([]string, 0, len(c.data))
	for k, e := range c.data {
		if e.expired(now) {
			delete(c.data, k)
			continue
		}
		keys = append(keys, k)
	}
	c.mu.Unlock()

	sort.Strings(keys)
	return keys, nil
}

func (c *Cache) evict(key string) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	// A concurrent Put may have refreshed the entry.
	if e, ok := c.data[key]; ok && e.expired(now) {
		delete(c.data, key)
	}
}
