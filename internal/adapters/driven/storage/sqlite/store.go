package sqlite

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/wik/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/ports/driven"
	"github.com/custodia-labs/wik/internal/logger"
)

// databaseName is the file created under the cache root.
const databaseName = "cache.db"

// Ensure Store implements the interface.
var _ driven.ContentStore = (*Store)(nil)

// Store is a SQLite-backed content store.
type Store struct {
	db   *sql.DB
	root string
	path string
}

// NewStore opens or creates the database under root.
// The root is created if missing.
func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("sqlite store: empty cache root: %w", domain.ErrInvalidInput)
	}

	if err := os.MkdirAll(root, 0700); err != nil {
		return nil, fmt.Errorf("creating cache root: %w: %w", domain.ErrCacheIO, err)
	}

	dbPath := filepath.Join(root, databaseName)

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w: %w", domain.ErrCacheIO, err)
	}

	s := &Store{
		db:   db,
		root: root,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Root returns the cache root directory.
func (s *Store) Root() string {
	return s.root
}

// Put stores payload as JSON under (session, name).
// Rewriting an existing name replaces the payload, matching the file store,
// so a refetch repairs an entry that no longer decodes.
func (s *Store) Put(session domain.Session, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w: %w", name, domain.ErrCacheIO, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO cache_content (session_id, name, payload)
		VALUES (?, ?, ?)
		ON CONFLICT (session_id, name) DO UPDATE SET payload = excluded.payload
	`, session.ID, name, string(data))
	if err != nil {
		return fmt.Errorf("write %s: %w: %w", name, domain.ErrCacheIO, err)
	}
	return nil
}

// Get decodes the payload stored under (session, name) into into.
// Missing rows, query failures and decode failures all report false.
func (s *Store) Get(session domain.Session, name string, into any) bool {
	var payload string
	err := s.db.QueryRow(
		"SELECT payload FROM cache_content WHERE session_id = ? AND name = ?",
		session.ID, name,
	).Scan(&payload)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Debug("Cache read %s: %v", name, err)
		}
		return false
	}

	if err := domain.DecodePayload([]byte(payload), into); err != nil {
		logger.Debug("Cache decode %s: %v", name, err)
		return false
	}
	return true
}

// Clear deletes every stored payload for every session.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM cache_content"); err != nil {
		return fmt.Errorf("clear cache: %w: %w", domain.ErrCacheIO, err)
	}
	return nil
}

// Sessions returns the ids of sessions with stored payloads.
func (s *Store) Sessions() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT session_id FROM cache_content ORDER BY session_id")
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_cache_content.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		logger.Debug("Applied cache migration %s", name)
	}

	return nil
}
