package optimizer

import (
	"encoding/json"
	"fmt"
	"os"
)

// CacheEntry records the outcome of one optimization, keyed by absolute file
// path. LastModified is the file's mtime (unix milliseconds) after the
// optimized bytes were written; a file whose current mtime is newer gets
// reprocessed.
type CacheEntry struct {
	LastModified int64 `json:"lastModified"`
	Size         int64 `json:"size"`
	OriginalSize int64 `json:"originalSize"`
	Width        int   `json:"width"`
	Height       int   `json:"height"`
}

// Cache is the persisted optimization history. It is saved after every
// successful file so a crashed run loses no prior progress.
type Cache struct {
	path    string
	entries map[string]CacheEntry
}

// LoadCache reads the cache file; a missing or unreadable cache starts empty.
func LoadCache(path string) *Cache {
	cache := &Cache{path: path, entries: make(map[string]CacheEntry)}
	data, err := os.ReadFile(path)
	if err != nil {
		return cache
	}
	if err := json.Unmarshal(data, &cache.entries); err != nil {
		cache.entries = make(map[string]CacheEntry)
	}
	return cache
}

func (c *Cache) Get(path string) (CacheEntry, bool) {
	entry, ok := c.entries[path]
	return entry, ok
}

// Put records an entry and persists the whole cache immediately.
func (c *Cache) Put(path string, entry CacheEntry) error {
	c.entries[path] = entry
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal optimization cache: %w", err)
	}
	if err := os.WriteFile(c.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write optimization cache: %w", err)
	}
	return nil
}
