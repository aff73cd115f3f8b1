package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cache holds one lazily loaded value. A zero ttl keeps the value until
// clear is called. Concurrent loads of an empty slot share a single fetch.
type cache[T any] struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	mu         sync.RWMutex
	value      T
	loaded     bool
	fetchedAt  time.Time
	generation uint64

	group singleflight.Group
}

func newCache[T any](name string, ttl time.Duration, now func() time.Time) *cache[T] {
	if now == nil {
		now = time.Now
	}
	return &cache[T]{name: name, ttl: ttl, now: now}
}

func (c *cache[T]) get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		var zero T
		return zero, false
	}
	if c.ttl > 0 && c.now().Sub(c.fetchedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return c.value, true
}

// set stores v unless the slot was cleared after the fetch started.
func (c *cache[T]) set(v T, generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return
	}
	c.value = v
	c.loaded = true
	c.fetchedAt = c.now()
}

func (c *cache[T]) clear() {
	c.mu.Lock()
	var zero T
	c.value = zero
	c.loaded = false
	c.generation++
	c.mu.Unlock()

	c.group.Forget(c.name)
}

func (c *cache[T]) currentGeneration() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// load returns the cached value or calls fetch to fill the slot. Errors are
// returned to the caller and never cached. The fetch is shared by every
// waiter, so it keeps the caller's values but not its cancellation.
func (c *cache[T]) load(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := c.get(); ok {
		return v, nil
	}

	res, err, _ := c.group.Do(c.name, func() (any, error) {
		if v, ok := c.get(); ok {
			return v, nil
		}
		generation := c.currentGeneration()
		v, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.set(v, generation)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}
