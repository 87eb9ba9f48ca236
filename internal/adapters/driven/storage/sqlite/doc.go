// Package sqlite provides a SQLite-backed implementation of the
// NoteStore driven port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite
// implementation that requires no CGO, enabling easy
// cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored
// in the migrations/ directory and embedded at compile time.
//
// # Data Location
//
// By default, the database is stored at ~/.zettelview/data/notes.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level
// locking provided by SQLite in WAL mode.
package sqlite
