package memory

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/ports/driven"
)

// Ensure ContentStore implements the interface.
var _ driven.ContentStore = (*ContentStore)(nil)

// ContentStore is an in-memory driven.ContentStore.
// Payloads are held JSON-encoded so a round trip matches the disk store.
type ContentStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string][]byte
	failPut  error
}

// NewContentStore creates an empty in-memory content store.
func NewContentStore() *ContentStore {
	return &ContentStore{
		sessions: make(map[string]map[string][]byte),
	}
}

// FailPuts makes every later Put return err wrapped in domain.ErrCacheIO.
// A nil err restores normal writes.
func (s *ContentStore) FailPuts(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failPut = err
}

// Root returns ":memory:".
func (s *ContentStore) Root() string {
	return ":memory:"
}

// Put stores the JSON encoding of payload.
func (s *ContentStore) Put(session domain.Session, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w: %w", name, domain.ErrCacheIO, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failPut != nil {
		return fmt.Errorf("write %s: %w: %w", name, domain.ErrCacheIO, s.failPut)
	}

	files, ok := s.sessions[session.ID]
	if !ok {
		files = make(map[string][]byte)
		s.sessions[session.ID] = files
	}
	files[name] = data
	return nil
}

// Get decodes the named payload into into.
func (s *ContentStore) Get(session domain.Session, name string, into any) bool {
	s.mu.RLock()
	data, ok := s.sessions[session.ID][name]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	return domain.DecodePayload(data, into) == nil
}

// Clear drops every session.
func (s *ContentStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]map[string][]byte)
	return nil
}

// Sessions returns the ids of sessions holding payloads.
func (s *ContentStore) Sessions() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.sessions))
	for id, files := range s.sessions {
		if len(files) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Len returns the number of payloads held for session.
func (s *ContentStore) Len(session domain.Session) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions[session.ID])
}
