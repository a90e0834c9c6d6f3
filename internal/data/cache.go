package data

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sync"
	"time"
)

type cacheEntry struct {
	workbook  []byte
	expiresAt time.Time
}

// WorkbookCache keeps rendered workbooks keyed by the request that produced them, so
// downloading the same run twice renders once. Safe for concurrent use; a nil cache
// is valid and never hits.
type WorkbookCache struct {
	mu    sync.RWMutex
	store map[string]cacheEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewWorkbookCache(ttl time.Duration) *WorkbookCache {
	return &WorkbookCache{store: make(map[string]cacheEntry), ttl: ttl, now: time.Now}
}

// CacheFromEnv returns a cache when ENABLE_REPORT_CACHE=true, otherwise nil.
// REPORT_CACHE_TTL overrides the one hour default.
func CacheFromEnv() *WorkbookCache {
	if os.Getenv("ENABLE_REPORT_CACHE") != "true" {
		return nil
	}
	ttl := time.Hour
	if s := os.Getenv("REPORT_CACHE_TTL"); s != "" {
		if parsed, err := time.ParseDuration(s); err == nil {
			ttl = parsed
		}
	}
	return NewWorkbookCache(ttl)
}

func (c *WorkbookCache) Get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.store[key]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.workbook, true
}

// Set stores a workbook and drops expired entries.
func (c *WorkbookCache) Set(key string, workbook []byte) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, e := range c.store {
		if now.After(e.expiresAt) {
			delete(c.store, k)
		}
	}
	c.store[key] = cacheEntry{workbook: workbook, expiresAt: now.Add(c.ttl)}
}

func (c *WorkbookCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// CacheKey hashes every part that influences the rendered workbook.
func CacheKey(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
