package records

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Snapshot is a loaded, filtered and indexed record store.
type Snapshot struct {
	// Store is the indexed record store.
	Store *MemoryStore

	// Built is the timestamp when this snapshot was loaded.
	Built time.Time

	// TTL is the time-to-live for this snapshot.
	TTL time.Duration
}

// IsExpired returns true if this snapshot has expired based on its TTL.
func (s *Snapshot) IsExpired() bool {
	if s.TTL == 0 {
		return true // No caching
	}
	return time.Since(s.Built) > s.TTL
}

// Cache holds loaded snapshots keyed by source and prefix filter.
type Cache struct {
	ttl      time.Duration
	prefixes []string

	mu        sync.RWMutex
	snapshots map[string]*Snapshot
	sf        singleflight.Group
}

// NewCache creates a snapshot cache. A zero ttl reloads on every Get.
func NewCache(ttl time.Duration, prefixes []string) *Cache {
	return &Cache{
		ttl:       ttl,
		prefixes:  prefixes,
		snapshots: make(map[string]*Snapshot),
	}
}

func (c *Cache) key(src Source) string {
	return src.Key() + "|" + strings.Join(c.prefixes, ",")
}

// Load reads src, applies the prefix filter and indexes the result.
// This function does NOT store the snapshot; use Get for that.
func (c *Cache) Load(ctx context.Context, src Source) (*Snapshot, error) {
	recs, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Store: NewMemoryStore(FilterPrefixes(recs, c.prefixes)),
		Built: time.Now(),
		TTL:   c.ttl,
	}, nil
}

// Get returns the snapshot for src from the cache, or loads a new one if it doesn't
// exist or has expired. Uses singleflight to prevent load stampedes.
func (c *Cache) Get(ctx context.Context, src Source) (*Snapshot, error) {
	key := c.key(src)

	// Fast path: check if snapshot exists and is fresh
	c.mu.RLock()
	snap, exists := c.snapshots[key]
	c.mu.RUnlock()

	if exists && !snap.IsExpired() {
		return snap, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		snap, exists := c.snapshots[key]
		c.mu.RUnlock()

		if exists && !snap.IsExpired() {
			return snap, nil
		}

		fresh, err := c.Load(ctx, src)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.snapshots[key] = fresh
		c.mu.Unlock()

		return fresh, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Snapshot), nil
}

// Invalidate removes the snapshot for src so the next Get reloads it.
func (c *Cache) Invalidate(src Source) {
	key := c.key(src)
	c.mu.Lock()
	delete(c.snapshots, key)
	c.mu.Unlock()
}
