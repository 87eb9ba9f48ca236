package domain

import "time"

// DefaultMaxResults caps result lists when SearchOptions does not
// specify a limit.
const DefaultMaxResults = 50

// SearchOptions configures a search call.
type SearchOptions struct {
	// MaxResults is the maximum number of results. Values <= 0 fall
	// back to DefaultMaxResults.
	MaxResults int

	// IncludeBody controls whether result entries carry the note body.
	IncludeBody bool

	// CaseSensitive disables case folding for all leaf matches.
	CaseSensitive bool
}

// DefaultSearchOptions returns the options used when the caller
// passes none: 50 results, bodies included, case-insensitive.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		MaxResults:  DefaultMaxResults,
		IncludeBody: true,
	}
}

// MatchField names the note field a leaf operator hit.
type MatchField string

// Fields reported by match annotations.
const (
	MatchTitle MatchField = "title"
	MatchBody  MatchField = "body"
	MatchTags  MatchField = "tags"
)

// Match annotates one leaf-operator hit on a note, for UI highlighting.
type Match struct {
	// Field is the note field that matched.
	Field MatchField

	// Excerpt is the display text for the hit: the verbatim title,
	// a capped body excerpt, or the joined tag list.
	Excerpt string

	// Indices holds the [start, end) rune offsets of the matched
	// substring within the original field. Only populated for direct
	// leaf matches on title and body; empty for tag hits and for
	// matches produced deep inside combinators.
	Indices []int
}

// QueryInfo records how a result set was produced.
type QueryInfo struct {
	// OriginalQuery is the raw query string as typed.
	OriginalQuery string

	// ParsedQuery is the canonical rendering of the operator tree.
	ParsedQuery string

	// ExecutionTime is the wall-clock duration of the search call.
	ExecutionTime time.Duration
}

// SearchResult is one matching note with its match annotations.
// Score is uniformly 1.0 for the boolean engine; ordering is the
// stable corpus order, not a relevance ranking.
type SearchResult struct {
	// NoteID identifies the matched note.
	NoteID string

	// Title is the note title.
	Title string

	// Body is the note body, empty when IncludeBody is off.
	Body string

	// Tags are the note's tags.
	Tags []string

	// Score is the match score. Always 1.0 for boolean matches.
	Score float64

	// Matches lists the leaf hits that caused this note to match.
	Matches []Match

	// QueryInfo describes the query that produced this result.
	QueryInfo QueryInfo
}
