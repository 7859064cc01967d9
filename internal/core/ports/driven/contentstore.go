package driven

import "github.com/custodia-labs/wik/internal/core/domain"

// ContentStore persists cached payloads under a session-scoped directory.
// Files are addressed by content hash and never updated in place.
type ContentStore interface {
	// Put serialises payload into the file name inside the session
	// directory, creating parent directories as needed.
	// Failures wrap domain.ErrCacheIO.
	Put(session domain.Session, name string, payload any) error

	// Get deserialises the named file into into.
	// A missing, unreadable or unparsable file is a soft miss and
	// returns false, never an error.
	Get(session domain.Session, name string, into any) bool

	// Clear removes every session under the root and recreates the root.
	Clear() error

	// Sessions returns the ids of sessions holding payloads, sorted.
	Sessions() ([]string, error)

	// Root returns the cache root location.
	Root() string
}
