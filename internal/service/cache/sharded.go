package cache

import (
	"hash/fnv"
	"time"
)

// Sharded spreads keys over several independent LRU shards to reduce lock contention.
type Sharded[V any] struct {
	shards    []*ttlCache[V]
	shardMask uint32
}

// NewSharded creates a sharded cache with the given total capacity, TTL and
// shard count. The shard count is rounded up to a power of two; zero or less
// means 16.
func NewSharded[V any](capacity int, ttl time.Duration, numShards int) *Sharded[V] {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := max(1, capacity/n)
	cleanupEvery := max(ttl, time.Second)

	shards := make([]*ttlCache[V], n)
	for i := range shards {
		shards[i] = newTTLCache[V](perShard, ttl, cleanupEvery)
	}
	return &Sharded[V]{shards: shards, shardMask: uint32(n - 1)}
}

func (s *Sharded[V]) shard(key string) *ttlCache[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()&s.shardMask]
}

// NumShards returns the number of shards.
func (s *Sharded[V]) NumShards() int {
	return len(s.shards)
}

// Get retrieves a value from the owning shard.
func (s *Sharded[V]) Get(key string) (V, bool) {
	return s.shard(key).Get(key)
}

// Set stores a value in the owning shard.
func (s *Sharded[V]) Set(key string, value V) {
	s.shard(key).Set(key, value)
}

// Invalidate removes a key from the owning shard.
func (s *Sharded[V]) Invalidate(key string) {
	s.shard(key).Invalidate(key)
}

// Clear removes all entries from all shards.
func (s *Sharded[V]) Clear() {
	for _, sh := range s.shards {
		sh.Clear()
	}
}

// Stop shuts down every shard's cleanup goroutine.
func (s *Sharded[V]) Stop() {
	for _, sh := range s.shards {
		sh.Stop()
	}
}

// Metrics returns metrics summed over all shards.
func (s *Sharded[V]) Metrics() Metrics {
	var total Metrics
	for _, sh := range s.shards {
		m := sh.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}
