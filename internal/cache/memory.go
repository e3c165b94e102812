package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryViewCache is an in-process ViewCache for the memory storage driver and tests.
type MemoryViewCache struct {
	mu          sync.Mutex
	ttl         time.Duration
	now         func() time.Time
	entries     map[string]memoryEntry
	generations map[string]int64
}

// NewMemoryViewCache creates an empty cache. A zero ttl never expires entries.
func NewMemoryViewCache(ttl time.Duration) *MemoryViewCache {
	return &MemoryViewCache{
		ttl:         ttl,
		now:         time.Now,
		entries:     map[string]memoryEntry{},
		generations: map[string]int64{},
	}
}

func (c *MemoryViewCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (c *MemoryViewCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := memoryEntry{value: append([]byte(nil), value...)}
	if c.ttl > 0 {
		e.expiresAt = c.now().Add(c.ttl)
	}
	c.entries[key] = e
	return nil
}

func (c *MemoryViewCache) Generation(_ context.Context, businessProfileID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[businessProfileID], nil
}

func (c *MemoryViewCache) Invalidate(_ context.Context, businessProfileID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[businessProfileID]++
	return nil
}

func (c *MemoryViewCache) Close() error {
	return nil
}

// Len reports the number of stored entries, expired or not.
func (c *MemoryViewCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
