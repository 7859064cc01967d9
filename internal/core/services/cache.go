package services

import (
	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/ports/driven"
	"github.com/custodia-labs/wik/internal/core/ports/driving"
	"github.com/custodia-labs/wik/internal/logger"
)

// Ensure CacheService implements the interface.
var _ driving.CacheService = (*CacheService)(nil)

// CacheService exposes the session cache to operators.
type CacheService struct {
	cache *RequestCache
	store driven.ContentStore
}

// NewCacheService creates a new cache service.
func NewCacheService(cache *RequestCache, store driven.ContentStore) *CacheService {
	return &CacheService{
		cache: cache,
		store: store,
	}
}

// Session returns the session owning the cache.
func (s *CacheService) Session() domain.Session {
	return s.cache.Session()
}

// Root returns the cache root location.
func (s *CacheService) Root() string {
	return s.store.Root()
}

// Entries returns a snapshot of the request table.
func (s *CacheService) Entries() []domain.CacheEntry {
	return s.cache.Entries()
}

// Sessions returns the ids of every session holding payloads.
func (s *CacheService) Sessions() ([]string, error) {
	return s.store.Sessions()
}

// Clear wipes the cache root, including other sessions' directories.
func (s *CacheService) Clear() error {
	logger.Debug("Clearing cache root %s", s.store.Root())
	return s.cache.Clear()
}
