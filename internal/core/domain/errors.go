package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// Query lex and parse failures are deliberately NOT errors: they are
// captured inside ParsedQuery so a half-typed query can never crash
// a caller. The sentinels below cover the note store collaborator.
var (
	// ErrNotFound indicates a requested note does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSearchUnavailable indicates the search engine is not configured.
	ErrSearchUnavailable = errors.New("search engine unavailable")

	// ErrStoreUnavailable indicates the note store is not configured.
	ErrStoreUnavailable = errors.New("note store unavailable")
)
