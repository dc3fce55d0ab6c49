// Package cache provides the optional storage behind module field catalogs.
// Field definitions change rarely, so callers can keep GetFields results in
// process memory or in a shared NATS key-value bucket instead of refetching
// them on every call. The default is no caching at all.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Radin-System/go-sarvcrm-api/internal/constants"
	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

// Static errors for err113 compliance.
var (
	ErrUnknownCacheType = errors.New("unknown cache type")
	ErrNATSURLRequired  = errors.New("NATS URL is required for the nats cache")
)

// Cache stores serialized field catalogs by key.
type Cache interface {
	// Get returns the cached value and whether it was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// New builds a cache from config. A nil config or type "none" returns the
// no-op cache.
func New(cfg *sarvcrm.CacheConfig) (Cache, error) {
	if cfg == nil {
		return &NoOpCache{}, nil
	}

	switch cfg.Type {
	case "", sarvcrm.CacheTypeNone:
		return &NoOpCache{}, nil
	case sarvcrm.CacheTypeMemory:
		return NewMemoryCache(cfg.TTL, cfg.MaxEntries), nil
	case sarvcrm.CacheTypeNATS:
		return NewNATSCache(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCacheType, cfg.Type)
	}
}

// NoOpCache never stores anything.
type NoOpCache struct{}

func (c *NoOpCache) Get(_ context.Context, _ string) ([]byte, bool) { return nil, false }

func (c *NoOpCache) Set(_ context.Context, _ string, _ []byte) error { return nil }

func (c *NoOpCache) Delete(_ context.Context, _ string) error { return nil }

func (c *NoOpCache) Close() error { return nil }

// MemoryCache is a TTL cache held in process memory.
type MemoryCache struct {
	mu         sync.RWMutex
	ttl        time.Duration
	maxEntries int
	entries    map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryCache creates an in-memory cache. A non-positive ttl falls back
// to the default; maxEntries of zero or less means unbounded.
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	if ttl <= 0 {
		ttl = constants.DefaultCacheTTL
	}

	return &MemoryCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]memoryEntry),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}

	return entry.value, true
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictExpired()

	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		if _, exists := c.entries[key]; !exists {
			c.evictOldest()
		}
	}

	c.entries[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}

	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]memoryEntry)

	return nil
}

// evictExpired drops stale entries. Callers must hold the write lock.
func (c *MemoryCache) evictExpired() {
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// evictOldest drops the entry closest to expiry. Callers must hold the
// write lock.
func (c *MemoryCache) evictOldest() {
	var (
		oldestKey string
		oldestAt  time.Time
	)

	for key, entry := range c.entries {
		if oldestKey == "" || entry.expiresAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.expiresAt
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
