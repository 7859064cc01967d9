package driving

import "github.com/custodia-labs/wik/internal/core/domain"

// CacheService exposes the session cache to operators.
type CacheService interface {
	// Session returns the session owning the cache.
	Session() domain.Session

	// Root returns the cache root location.
	Root() string

	// Entries returns a snapshot of the request table.
	Entries() []domain.CacheEntry

	// Sessions returns the ids of every session holding payloads under
	// the root, including other processes' sessions.
	Sessions() ([]string, error)

	// Clear wipes the cache root.
	Clear() error
}
