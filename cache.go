package flyweight

import (
	"context"
	"sync"
	"time"
)

// Builder constructs the shared value for key the first time key is requested.
// It must not fail and must not call back into the same Cache.
type Builder[P, V any] func(key string, params P) V

// Cache maps a key to a lazily constructed, shared value.
// At most one value is ever built per key; later lookups return that same value.
type Cache[P, V any] struct {
	name     string
	build    Builder[P, V]
	observer Observer

	mu    sync.Mutex
	store *memoryStore
}

// NewCache creates an empty cache that builds values with build.
// @group Cache
//
// Example: shared values per key
//
//	c := flyweight.NewCache(func(key string, size int) *Tile {
//		return &Tile{Name: key, Size: size}
//	}, flyweight.WithName("tiles"))
//	a, _ := c.Get("grass", 16)
//	b, _ := c.Get("grass", 32)
//	fmt.Println(a == b, b.Size) // true 16
func NewCache[P, V any](build Builder[P, V], opts ...Option) *Cache[P, V] {
	if build == nil {
		panic("flyweight: nil builder")
	}
	cfg := newConfig(defaultCacheName, opts)
	return &Cache[P, V]{
		name:     cfg.Name,
		build:    build,
		observer: cfg.Observer,
		store:    newMemoryStore(),
	}
}

// Name reports the label the cache was configured with.
func (c *Cache[P, V]) Name() string {
	return c.name
}

// Get returns the value for key, building it from params on first request.
// params is ignored once key has a value.
// @group Cache
func (c *Cache[P, V]) Get(key string, params P) (V, error) {
	return c.GetCtx(context.Background(), key, params)
}

// GetCtx is the context-aware variant of Get. The context is only handed to observers.
func (c *Cache[P, V]) GetCtx(ctx context.Context, key string, params P) (V, error) {
	var zero V
	start := time.Now()
	if key == "" {
		err := &InvalidKeyError{Cache: c.name}
		observe(ctx, c.observer, c.name, OpGet, key, false, err, start)
		return zero, err
	}

	value, built := c.loadOrBuild(key, params)
	if built {
		observe(ctx, c.observer, c.name, OpConstruct, key, false, nil, start)
	}
	observe(ctx, c.observer, c.name, OpGet, key, !built, nil, start)
	return value, nil
}

// loadOrBuild runs lookup, construction and insertion as one critical section.
func (c *Cache[P, V]) loadOrBuild(key string, params P) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item, ok := c.store.get(key); ok {
		return item.(V), false
	}
	value := c.build(key, params)
	c.store.add(key, value)
	return value, true
}

// Peek returns the value for key without building it.
// @group Cache
func (c *Cache[P, V]) Peek(key string) (V, bool) {
	var zero V
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.store.get(key)
	if !ok {
		return zero, false
	}
	return item.(V), true
}

// Keys returns every key with a value, in the order the values were built.
// @group Cache
func (c *Cache[P, V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.keys()
}

// Len reports how many values have been built.
func (c *Cache[P, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.len()
}
