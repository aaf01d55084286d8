// Package query implements the polling query-cache layer shared by all
// resource services.
//
// Each resource has a stable cache key, a fetch function and a poll
// interval. Reads are served from cache while the entry is fresh; concurrent
// reads of one key are deduplicated into a single in-flight fetch. Mutations
// invalidate their key when they settle, which is the only synchronization
// primitive between reads and writes: a read started after an invalidation
// refetches, nothing more is guaranteed.
package query

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dmuwanga/ohns-backoffice/internal/logging"
)

type entry struct {
	value any
	stale bool
}

// Cache is an explicit cache keyed by resource identifier.
//
// Each key carries a generation counter bumped by Invalidate. Writers
// capture the generation before fetching; a write whose generation moved
// while the fetch was in flight lands stale, so an invalidation can never
// be erased by a slower fetch that started before it.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	gens    map[string]uint64
	group   singleflight.Group
	log     logging.Logger
}

func NewCache(log logging.Logger) *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		gens:    make(map[string]uint64),
		log:     log,
	}
}

// lookup returns the cached value for key if present and not stale.
func (c *Cache) lookup(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.stale {
		return nil, false
	}
	return e.value, true
}

// generation returns the current invalidation generation for key. Writers
// capture it before fetching and pass it back to put.
func (c *Cache) generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[key]
}

// put stores value under key. When the key's generation moved since gen was
// captured, an invalidation raced the fetch: the value is stored stale so
// the next read refetches instead of serving pre-invalidation data.
func (c *Cache) put(key string, value any, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{value: value, stale: c.gens[key] != gen}
}

// get serves key from cache, or runs fetch exactly once no matter how many
// callers arrive while it is in flight.
func (c *Cache) get(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// a fetch that completed while we waited is good enough
		if v, ok := c.lookup(key); ok {
			return v, nil
		}

		gen := c.generation(key)
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.put(key, v, gen)
		return v, nil
	})
	return v, err
}

// Invalidate marks the given keys stale so the next read refetches. Values
// are kept: background refreshes that fail leave the last data visible.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		c.gens[key]++
		if e, ok := c.entries[key]; ok {
			e.stale = true
		}
		c.log.Debug(context.Background(), "cache invalidated", "key", key)
	}
}

// Reset drops every entry. Used on logout so no user-scoped data survives
// the session.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
	c.gens = make(map[string]uint64)
}
