package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/ports/driven"
	"github.com/custodia-labs/wik/internal/logger"
)

// contentHashLength is the number of hex characters kept from the digest.
const contentHashLength = 16

// ContentHash returns the content file name for a request key.
// It is a pure function of key.
func ContentHash(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:contentHashLength]
}

// RequestCache maps request keys to content files in a session-scoped store.
//
// The in-memory table is the index and the store holds the content. An
// entry is added only after its content has been written, so the index
// never points at a file that does not exist. All store access goes
// through mu.
type RequestCache struct {
	mu      sync.Mutex
	session domain.Session
	store   driven.ContentStore
	entries map[string]domain.CacheEntry
}

// NewRequestCache creates an empty cache for session backed by store.
func NewRequestCache(session domain.Session, store driven.ContentStore) *RequestCache {
	return &RequestCache{
		session: session,
		store:   store,
		entries: make(map[string]domain.CacheEntry),
	}
}

// Session returns the session the cache writes under.
func (c *RequestCache) Session() domain.Session {
	return c.session
}

// Has reports whether key has been recorded.
func (c *RequestCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	return ok
}

// Resolve loads the payload recorded for key into into.
// It returns false when key was never recorded or its content can no
// longer be read, in which case the caller should fetch again.
func (c *RequestCache) Resolve(key string, into any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return false
	}

	if !c.store.Get(c.session, entry.FileName, into) {
		logger.Debug("Cache entry %s unreadable, treating as miss", entry.FileName)
		return false
	}
	return true
}

// Record writes payload through the store and then indexes key.
// On a store failure the table is left unchanged.
func (c *RequestCache) Record(key string, payload any) error {
	entry := domain.CacheEntry{Key: key, FileName: ContentHash(key)}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Put(c.session, entry.FileName, payload); err != nil {
		return fmt.Errorf("record %s: %w", entry.FileName, err)
	}

	c.entries[key] = entry
	logger.Debug("Cached %q as %s", key, entry.FileName)
	return nil
}

// Entries returns a snapshot of the table ordered by key.
func (c *RequestCache) Entries() []domain.CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]domain.CacheEntry, 0, len(c.entries))
	for _, e := range c.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Len returns the number of recorded entries.
func (c *RequestCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear wipes the store and empties the table.
// The table is emptied even if the wipe fails part way, since entries may
// now point at removed files.
func (c *RequestCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]domain.CacheEntry)
	if err := c.store.Clear(); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}
