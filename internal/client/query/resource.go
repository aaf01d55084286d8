package query

import (
	"context"
	"time"
)

// Resource is one declarative data-fetching definition: a stable cache key,
// a fetch function and a poll interval.
type Resource[T any] struct {
	cache    *Cache
	key      string
	interval time.Duration
	fetch    func(ctx context.Context) (T, error)
}

func NewResource[T any](cache *Cache, key string, interval time.Duration, fetch func(ctx context.Context) (T, error)) *Resource[T] {
	return &Resource[T]{cache: cache, key: key, interval: interval, fetch: fetch}
}

func (r *Resource[T]) Key() string { return r.key }

func (r *Resource[T]) Interval() time.Duration { return r.interval }

// Get returns the cached value, fetching when the entry is absent or stale.
func (r *Resource[T]) Get(ctx context.Context) (T, error) {
	v, err := r.cache.get(ctx, r.key, func(ctx context.Context) (any, error) {
		return r.fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate marks the resource stale; the next Get refetches.
func (r *Resource[T]) Invalidate() {
	r.cache.Invalidate(r.key)
}

// Refresh fetches fresh data in the background. On failure the previous
// value stays visible to readers. An invalidation that lands while the
// fetch is in flight outranks the fetched data.
func (r *Resource[T]) Refresh(ctx context.Context) error {
	gen := r.cache.generation(r.key)
	v, err := r.fetch(ctx)
	if err != nil {
		return err
	}
	r.cache.put(r.key, v, gen)
	return nil
}
