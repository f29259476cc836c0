package fp

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// MemoConfig sizes the cache backing a memoized function.
type MemoConfig struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
}

// DefaultMemoConfig suits the small fixture sets this module works with.
func DefaultMemoConfig() MemoConfig {
	return MemoConfig{
		NumCounters: 1000,
		MaxCost:     100,
		BufferItems: 64,
	}
}

// Memo is a memoized func(string) V. Every entry costs 1.
type Memo[V any] struct {
	cache *ristretto.Cache[string, V]
	fn    func(string) V
}

// Memoize wraps a pure function with a ristretto cache keyed by its argument.
// fn must be pure: a cached result is indistinguishable from a fresh call.
func Memoize[V any](fn func(string) V, cfg MemoConfig) (*Memo[V], error) {
	bufferItems := cfg.BufferItems
	if bufferItems <= 0 {
		bufferItems = 64
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems:        bufferItems,
		Metrics:            true,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create memo cache: %w", err)
	}

	return &Memo[V]{cache: cache, fn: fn}, nil
}

// Call returns the cached result for key, computing and storing it on a miss.
func (m *Memo[V]) Call(key string) V {
	if v, ok := m.cache.Get(key); ok {
		return v
	}

	v := m.fn(key)
	m.cache.Set(key, v, 1)
	m.cache.Wait()
	return v
}

// Func exposes Call as a plain function value for use in pipelines.
func (m *Memo[V]) Func() func(string) V {
	return m.Call
}

// Hits reports how many calls were served from the cache.
func (m *Memo[V]) Hits() uint64 {
	return m.cache.Metrics.Hits()
}

// Close releases the cache.
func (m *Memo[V]) Close() {
	m.cache.Close()
}
