package domain

import (
	"github.com/google/uuid"
)

// Session identifies one run of the process.
// Each session owns an isolated subdirectory under the cache root, so two
// concurrent processes never write to the same files.
type Session struct {
	// ID is an opaque random identifier, minted once at startup.
	ID string
}

// NewSession mints a session with a fresh random identifier.
func NewSession() Session {
	return Session{ID: uuid.NewString()}
}

// String returns the session identifier.
func (s Session) String() string {
	return s.ID
}

// IsZero reports whether the session has no identifier.
func (s Session) IsZero() bool {
	return s.ID == ""
}
