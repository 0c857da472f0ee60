package analyze

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/RohanBisht33/trustscan-app/internal/types"
)

// Cache memoizes analysis results by text digest. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(key string) (*types.AnalysisResult, bool)
	Set(key string, result *types.AnalysisResult)
}

// MemoCache is a bounded in-memory Cache. When the entry limit is reached the
// map is reset rather than evicted per-entry; analysis is cheap enough that a
// cold cache costs little.
type MemoCache struct {
	mu      sync.RWMutex
	entries map[string]*types.AnalysisResult
	limit   int
}

// DefaultCacheLimit bounds the memo cache size.
const DefaultCacheLimit = 1024

// NewMemoCache creates a MemoCache holding at most limit entries. A
// non-positive limit uses DefaultCacheLimit.
func NewMemoCache(limit int) *MemoCache {
	if limit <= 0 {
		limit = DefaultCacheLimit
	}
	return &MemoCache{
		entries: make(map[string]*types.AnalysisResult),
		limit:   limit,
	}
}

// Get returns the memoized result for key, if present.
func (c *MemoCache) Get(key string) (*types.AnalysisResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.entries[key]
	return result, ok
}

// Set memoizes result under key.
func (c *MemoCache) Set(key string, result *types.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.limit {
		c.entries = make(map[string]*types.AnalysisResult)
	}
	c.entries[key] = result
}

// Len returns the number of memoized entries.
func (c *MemoCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// cacheKey digests the hint and text into a stable map key.
func cacheKey(text, hint string) string {
	h := sha256.New()
	_, _ = h.Write([]byte(hint))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}
