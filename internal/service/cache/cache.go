// Package cache holds the rendered page cache of the content service.
package cache

// Cache is the subset of TTLCache the content service depends on.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Invalidate(key K)
	Clear()
}

// Metrics is a snapshot of TTLCache counters.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}
