// Package content holds the per-tab content cache and the file format
// boundary deciding which paths are edited as text versus previewed.
package content

import (
	"sync"

	"github.com/atelier-ide/atelier/internal/domain/entity"
)

// Cache maps tab identities to loaded text content. Entries are additive
// and idempotent: background load completions only ever set a value for
// their own identity, so out-of-order completions cannot corrupt state.
//
// The empty string is a valid cached value — the sentinel for binary,
// image, and SVG content, which renders through a preview path instead of
// text editing.
//
// The cache is unbounded on purpose: entries are pruned whenever their
// owning tab is removed from every pane, which bounds it by open tab count.
type Cache struct {
	mu      sync.RWMutex
	entries map[entity.TabIdentity]string
}

// NewCache creates an empty content cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[entity.TabIdentity]string)}
}

// Get returns the cached text and whether an entry exists.
func (c *Cache) Get(id entity.TabIdentity) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	text, ok := c.entries[id]
	return text, ok
}

// Has reports whether an entry exists for id.
func (c *Cache) Has(id entity.TabIdentity) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[id]
	return ok
}

// Set stores text under id, replacing any previous value.
func (c *Cache) Set(id entity.TabIdentity, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = text
}

// Prune removes the entry for id. No-op when absent.
func (c *Cache) Prune(id entity.TabIdentity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// Clear removes all entries. Invoked on workspace switch.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[entity.TabIdentity]string)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
