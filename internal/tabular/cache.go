package tabular

import (
	"fmt"
	"os"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of parsed files held in memory. Game
// data sets are a handful of files, so eviction is effectively never hit.
const DefaultCacheSize = 64

// Cache parses CSV files and memoizes the result per path. It is owned by
// whoever constructs the database rather than being process-global, so tests
// stay isolated.
type Cache struct {
	mu      sync.Mutex
	entries *lru.Cache[string, []Record]
}

// NewCache creates a cache holding up to size parsed files.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, []Record](size)
	if err != nil {
		// lru.New only fails on a non-positive size, which is guarded above.
		panic(err)
	}
	return &Cache{entries: entries}
}

// Load returns the parsed records for path, reading and parsing the file only
// on the first call. An unreadable file yields an empty slice and the error.
func (c *Cache) Load(path string) ([]Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if records, ok := c.entries.Get(path); ok {
		return records, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	c.entries.Add(path, records)
	return records, nil
}

// Reload evicts the cache entry for path and re-parses the file.
func (c *Cache) Reload(path string) ([]Record, error) {
	c.Evict(path)
	return c.Load(path)
}

// Evict drops the cached entry for path, if any.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Remove(path)
}

// Len reports how many parsed files are currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}
