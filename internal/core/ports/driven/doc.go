// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal
// architecture. Core services depend on these interfaces, and
// infrastructure adapters implement them.
//
// The search engine itself needs no driven port: it evaluates queries
// against an in-memory snapshot handed to it by the note service.
// NoteStore is the only infrastructure boundary - note persistence.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
