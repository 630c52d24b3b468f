package cache

import (
	"context"
	"sync"
	"time"

	"cryptobuddy/internal/domain"
)

// DefaultTTL is how long a fetched coin stays fresh.
const DefaultTTL = 300 * time.Second

// Entry is a cached coin fact and the time it was fetched.
type Entry struct {
	Key       string          `json:"key"`
	Value     domain.CoinFact `json:"value"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// Store memoizes coin facts by coin id. Lookup reports whether the entry is
// still fresh; a stale or missing entry must be refetched by the caller.
// Implementations do not de-duplicate concurrent fetches of the same key.
type Store interface {
	Lookup(ctx context.Context, key string) (Entry, bool)
	Store(ctx context.Context, key string, value domain.CoinFact, fetchedAt time.Time)
}

// Memory is an in-process Store. Expired entries stay in the map until they are
// overwritten; freshness is only evaluated on read.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory creates an in-memory cache. A nil clock uses time.Now.
func NewMemory(ttl time.Duration, now func() time.Time) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Memory{
		entries: make(map[string]Entry),
		ttl:     ttl,
		now:     now,
	}
}

func (m *Memory) Lookup(ctx context.Context, key string) (Entry, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return Entry{}, false
	}
	return entry, isFresh(entry.FetchedAt, m.now(), m.ttl)
}

func (m *Memory) Store(ctx context.Context, key string, value domain.CoinFact, fetchedAt time.Time) {
	m.mu.Lock()
	m.entries[key] = Entry{Key: key, Value: value, FetchedAt: fetchedAt}
	m.mu.Unlock()
}

// TTL returns the freshness window.
func (m *Memory) TTL() time.Duration {
	return m.ttl
}

func isFresh(fetchedAt, now time.Time, ttl time.Duration) bool {
	return now.Sub(fetchedAt) < ttl
}
