package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/taproom/pkg/domain"
)

// DefaultMaxEntries bounds a Cache built without WithMaxEntries.
const DefaultMaxEntries = 10000

type cacheEntry struct {
	outcome   domain.Outcome
	expiresAt time.Time
}

func (e cacheEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Cache implements ports.TurnCache in memory with an optional TTL and a size bound.
// Safe for concurrent use. With a TTL, a janitor goroutine removes expired entries until
// Close is called.
type Cache struct {
	mu         sync.RWMutex
	data       map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
	evictions  int64
	now        func() time.Time

	janitor   *janitor
	closeOnce sync.Once
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithMaxEntries caps the number of stored outcomes. When full, expired entries go first,
// then arbitrary ones. Zero or less disables the bound.
func WithMaxEntries(n int) CacheOption {
	return func(c *Cache) {
		c.maxEntries = n
	}
}

// WithCleanupInterval sets how often the janitor sweeps expired entries. It defaults to the
// TTL; zero or less disables the janitor.
func WithCleanupInterval(d time.Duration) CacheOption {
	return func(c *Cache) {
		c.janitor = nil
		if d > 0 {
			c.janitor = &janitor{interval: d}
		}
	}
}

// NewCache creates an in-memory cache. A zero ttl keeps entries until they are evicted for
// space.
func NewCache(ttl time.Duration, opts ...CacheOption) *Cache {
	c := &Cache{
		data:       make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	if ttl > 0 {
		c.janitor = &janitor{interval: ttl}
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.janitor != nil {
		c.janitor.stop = make(chan struct{})
		c.janitor.done = make(chan struct{})
		go c.janitor.run(c)
	}
	return c
}

// Get returns a copy of the stored outcome.
func (c *Cache) Get(ctx context.Context, key string) (*domain.Outcome, error) {
	c.mu.RLock()
	entry, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return nil, domain.ErrCacheMiss
	}
	if entry.expired(c.now()) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return nil, domain.ErrCacheMiss
	}

	out := copyOutcome(entry.outcome)
	return &out, nil
}

// Set stores a copy of the outcome so later mutation by the caller cannot leak in.
func (c *Cache) Set(ctx context.Context, key string, outcome *domain.Outcome) error {
	entry := cacheEntry{outcome: copyOutcome(*outcome)}
	now := c.now()
	if c.ttl > 0 {
		entry.expiresAt = now.Add(c.ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.data[key]; !exists && c.maxEntries > 0 && len(c.data) >= c.maxEntries {
		c.makeRoomLocked(now)
	}
	c.data[key] = entry
	return nil
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Evictions returns how many entries were removed by the janitor or for space.
func (c *Cache) Evictions() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.evictions
}

// Close stops the janitor. Safe to call more than once.
func (c *Cache) Close() error {
	c.closeOnce.Do(func() {
		if c.janitor != nil {
			close(c.janitor.stop)
			<-c.janitor.done
		}
	})
	return nil
}

// deleteExpired removes every expired entry and returns how many went.
func (c *Cache) deleteExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleteExpiredLocked(c.now())
}

func (c *Cache) deleteExpiredLocked(now time.Time) int {
	count := 0
	for key, entry := range c.data {
		if entry.expired(now) {
			delete(c.data, key)
			count++
		}
	}
	c.evictions += int64(count)
	return count
}

// makeRoomLocked frees at least one slot.
func (c *Cache) makeRoomLocked(now time.Time) {
	if c.deleteExpiredLocked(now) > 0 {
		return
	}
	for key := range c.data {
		delete(c.data, key)
		c.evictions++
		return
	}
}

// janitor periodically sweeps expired entries.
type janitor struct {
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func (j *janitor) run(c *Cache) {
	defer close(j.done)
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.deleteExpired()
		case <-j.stop:
			return
		}
	}
}

func copyOutcome(o domain.Outcome) domain.Outcome {
	if o.Clarification != nil {
		c := *o.Clarification
		c.Options = append([]string(nil), c.Options...)
		if c.Input != nil {
			in := *c.Input
			c.Input = &in
		}
		o.Clarification = &c
	}
	if o.Proposal != nil {
		p := *o.Proposal
		p.Lines = append([]domain.OrderLine(nil), p.Lines...)
		p.Summary = append([]string(nil), p.Summary...)
		p.Anomalies = append([]domain.Anomaly(nil), p.Anomalies...)
		o.Proposal = &p
	}
	return o
}
