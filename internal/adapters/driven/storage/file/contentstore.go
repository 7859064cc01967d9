package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/ports/driven"
	"github.com/custodia-labs/wik/internal/logger"
)

// Ensure ContentStore implements the interface.
var _ driven.ContentStore = (*ContentStore)(nil)

// ContentStore persists payloads as JSON files under a session directory.
type ContentStore struct {
	root string
}

// DefaultRoot returns ~/.cache/wik/caches, or the platform cache directory
// equivalent when the home directory is unknown.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err == nil {
		return filepath.Join(home, ".cache", "wik", "caches"), nil
	}

	cacheDir, cacheErr := os.UserCacheDir()
	if cacheErr != nil {
		return "", fmt.Errorf("resolve cache root: %w", err)
	}
	return filepath.Join(cacheDir, "wik", "caches"), nil
}

// NewContentStore creates a store rooted at root.
// If root is empty, DefaultRoot is used. The root is created if missing.
func NewContentStore(root string) (*ContentStore, error) {
	if root == "" {
		var err error
		root, err = DefaultRoot()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(root, 0700); err != nil {
		return nil, fmt.Errorf("create cache root: %w: %w", domain.ErrCacheIO, err)
	}

	return &ContentStore{root: root}, nil
}

// Root returns the cache root directory.
func (s *ContentStore) Root() string {
	return s.root
}

// SessionDir returns the directory holding a session's files.
func (s *ContentStore) SessionDir(session domain.Session) string {
	return filepath.Join(s.root, session.ID)
}

// Put writes payload to <root>/<session>/<name>.
func (s *ContentStore) Put(session domain.Session, name string, payload any) error {
	dir := s.SessionDir(session)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create session dir: %w: %w", domain.ErrCacheIO, err)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w: %w", name, domain.ErrCacheIO, err)
	}

	if err := os.WriteFile(filepath.Join(dir, name), data, 0600); err != nil {
		return fmt.Errorf("write %s: %w: %w", name, domain.ErrCacheIO, err)
	}
	return nil
}

// Get reads <root>/<session>/<name> into into.
// Missing, unreadable and unparsable files all report false.
func (s *ContentStore) Get(session domain.Session, name string, into any) bool {
	data, err := os.ReadFile(filepath.Join(s.SessionDir(session), name))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debug("Cache read %s: %v", name, err)
		}
		return false
	}

	if err := domain.DecodePayload(data, into); err != nil {
		logger.Debug("Cache decode %s: %v", name, err)
		return false
	}
	return true
}

// Clear removes the root and everything under it, then recreates it.
func (s *ContentStore) Clear() error {
	if err := os.RemoveAll(s.root); err != nil {
		return fmt.Errorf("remove cache root: %w: %w", domain.ErrCacheIO, err)
	}
	if err := os.MkdirAll(s.root, 0700); err != nil {
		return fmt.Errorf("recreate cache root: %w: %w", domain.ErrCacheIO, err)
	}
	return nil
}

// Sessions returns the names of the session directories under the root.
func (s *ContentStore) Sessions() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list sessions: %w: %w", domain.ErrCacheIO, err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}
