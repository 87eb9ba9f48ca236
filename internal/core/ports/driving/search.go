package driving

import (
	"context"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

// SearchService exposes the boolean query engine to external actors.
//
// The engine is total: Search never returns an error. Invalid queries
// evaluate to an empty result list, with the parse failure available
// through ValidateQuery for inline display.
type SearchService interface {
	// Initialize replaces the corpus snapshot wholesale. Callers
	// invoke it on every note create, update or delete. The swap is
	// atomic; in-flight searches keep the snapshot they started with.
	Initialize(notes []domain.Note)

	// Search parses and evaluates a query against the current
	// snapshot. Empty and invalid queries yield an empty slice.
	// The context cancels evaluation cooperatively on large corpora.
	Search(ctx context.Context, query string, opts domain.SearchOptions) []domain.SearchResult

	// ValidateQuery runs the lexer and parser only, for live
	// feedback while the user types. The evaluator is never invoked.
	ValidateQuery(query string) domain.ValidationResult

	// GetSuggestions proposes completions for a partial query:
	// field keywords at the start of a term, boolean keywords after
	// a complete primary, and tag values after "tag:".
	GetSuggestions(query string) []string

	// GetSyntaxHelp returns fixed documentation lines describing the
	// query syntax.
	GetSyntaxHelp() []string
}
