// Package sqlite provides a SQLite-backed ContentStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Payloads are stored as JSON text in a single table keyed
// by (session, content hash), so the session and hash layout of the disk
// store is kept without one file per entry.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files.
//
// # Data Location
//
// The database lives at <cache root>/cache.db.
//
// # Thread Safety
//
// All operations are thread-safe. The store opens the database in WAL mode
// with a busy timeout, so several wik processes may share one root.
package sqlite
