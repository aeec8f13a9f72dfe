package middleware

import (
	"sync"
	"time"
)

// defaultIdempotencyEntries caps how many responses are kept for replay.
const defaultIdempotencyEntries = 10000

// idempotencyCache stores responses for replay, keyed by request fingerprint.
type idempotencyCache struct {
	mu         sync.RWMutex
	items      map[string]*cachedResponse
	ttl        time.Duration
	maxEntries int
	stopCh     chan struct{}
	stopOnce   sync.Once
	now        func() time.Time
}

func newIdempotencyCache(ttl time.Duration, maxEntries int) *idempotencyCache {
	if maxEntries <= 0 {
		maxEntries = defaultIdempotencyEntries
	}
	c := &idempotencyCache{
		items:      make(map[string]*cachedResponse),
		ttl:        ttl,
		maxEntries: maxEntries,
		stopCh:     make(chan struct{}),
		now:        time.Now,
	}
	go c.startCleanup()
	return c
}

// Get returns a response stored less than ttl ago.
func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok || c.now().Sub(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Set stores a response. When the cache is full the response is not stored
// and the request simply will not be replayable.
func (c *idempotencyCache) Set(key string, resp *cachedResponse) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxEntries {
		return false
	}
	resp.Timestamp = c.now()
	c.items[key] = resp
	return true
}

// Len returns the number of stored responses, expired ones included.
func (c *idempotencyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop ends the cleanup loop.
func (c *idempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *idempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *idempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
}
