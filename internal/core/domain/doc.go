// Package domain defines the core business entities for ZettelView.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Note: A note in the searchable corpus
//   - Token: A lexical unit of the query language
//   - Operator: A node in the parsed query tree (closed set)
//   - ParsedQuery: The outcome of parsing one query
//   - SearchResult: A matched note with highlight annotations
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
