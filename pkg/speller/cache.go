package speller

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Cache memoizes Check results by lowercased query.
// Lookups are deterministic for a given dictionary, so an entry stays valid
// until a word is added.
type Cache struct {
	entries    *patricia.Trie
	accessTime map[string]int64
	clock      int64
	hits       int64
	misses     int64
	maxEntries int
	mu         sync.Mutex
}

func NewCache(maxEntries int) *Cache {
	return &Cache{
		entries:    patricia.NewTrie(),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

func (c *Cache) Get(query string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := c.entries.Get(patricia.Prefix(query))
	if item == nil {
		c.misses++
		return Result{}, false
	}
	c.hits++
	c.markAccessed(query)
	return item.(Result), true
}

func (c *Cache) Put(query string, r Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.accessTime[query]; !exists && len(c.accessTime) >= c.maxEntries {
		c.evictLRU()
	}
	c.entries.Set(patricia.Prefix(query), r)
	c.markAccessed(query)
}

// Reset drops every entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.accessTime) == 0 {
		return
	}
	c.entries = patricia.NewTrie()
	c.accessTime = make(map[string]int64, c.maxEntries)
	log.Debug("Correction cache reset")
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.accessTime)
}

func (c *Cache) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return map[string]int{
		"cacheEntries": len(c.accessTime),
		"maxCacheSize": c.maxEntries,
		"cacheHits":    int(c.hits),
		"cacheMisses":  int(c.misses),
	}
}

func (c *Cache) markAccessed(query string) {
	c.clock++
	c.accessTime[query] = c.clock
}

func (c *Cache) evictLRU() {
	var oldestQuery string
	var oldestTime int64 = math.MaxInt64

	for query, accessTime := range c.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestQuery = query
		}
	}

	if oldestTime != math.MaxInt64 {
		c.entries.Delete(patricia.Prefix(oldestQuery))
		delete(c.accessTime, oldestQuery)
		log.Debugf("Evicted '%s' from correction cache", oldestQuery)
	}
}
