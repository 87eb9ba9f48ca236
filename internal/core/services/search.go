package services

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
	"github.com/blaster151/zettelview-sub001/internal/core/ports/driving"
	"github.com/blaster151/zettelview-sub001/internal/logger"
)

// Ensure SearchEngine implements the interface.
var _ driving.SearchService = (*SearchEngine)(nil)

// corpusSnapshot is an immutable view of the note collection. The
// engine swaps whole snapshots and never mutates one in place, so
// concurrent searches are safe against Initialize.
type corpusSnapshot struct {
	// notes in stable corpus order. Result ordering and the NOT
	// universe both derive from this slice.
	notes []domain.Note

	// tags is the distinct tag vocabulary, sorted case-insensitively,
	// used by the suggestion engine.
	tags []string
}

// SearchEngine evaluates boolean queries against a corpus of notes.
//
// Each engine instance owns its own snapshot; there is no package
// state, so tests and callers can run independent engines side by
// side. All methods are safe for concurrent use.
type SearchEngine struct {
	snapshot atomic.Pointer[corpusSnapshot]
}

// NewSearchEngine creates an engine with an empty corpus.
func NewSearchEngine() *SearchEngine {
	e := &SearchEngine{}
	e.snapshot.Store(&corpusSnapshot{})
	return e
}

// Initialize replaces the corpus snapshot wholesale. The notes slice
// is copied, so the caller keeps ownership of its backing array.
func (e *SearchEngine) Initialize(notes []domain.Note) {
	snap := &corpusSnapshot{
		notes: append([]domain.Note(nil), notes...),
		tags:  tagVocabulary(notes),
	}
	e.snapshot.Store(snap)
	logger.Debug("search engine initialised: %d notes, %d distinct tags", len(snap.notes), len(snap.tags))
}

// Search parses and evaluates a query against the current snapshot.
//
// It is a pure function over its inputs: empty and invalid queries
// short-circuit to an empty slice (invalid ones with a logged
// warning), evaluation never mutates the snapshot, and results are
// truncated to opts.MaxResults after the stable corpus-order sort.
func (e *SearchEngine) Search(ctx context.Context, query string, opts domain.SearchOptions) []domain.SearchResult {
	started := time.Now()
	snap := e.snapshot.Load()

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = domain.DefaultMaxResults
	}

	if strings.TrimSpace(query) == "" {
		return []domain.SearchResult{}
	}

	parsed := parseQuery(query)
	if !parsed.Valid {
		logger.Warn("invalid query %q: %s", query, parsed.Err)
		return []domain.SearchResult{}
	}
	if parsed.Root == nil {
		return []domain.SearchResult{}
	}

	logger.Section("Query Evaluation")
	logger.Debug("query: %q parsed as %s", query, parsed.Root.String())

	ids := evalOperator(ctx, parsed.Root, snap, opts.CaseSensitive)
	if ctx.Err() != nil {
		logger.Debug("search cancelled after %s", time.Since(started))
		return []domain.SearchResult{}
	}

	info := domain.QueryInfo{
		OriginalQuery: query,
		ParsedQuery:   parsed.Root.String(),
	}

	// Corpus order is the primary and only sort key: every boolean
	// match scores 1.0, and the stable corpus index makes ordering
	// reproducible.
	results := make([]domain.SearchResult, 0, len(ids))
	for _, note := range snap.notes {
		if _, ok := ids[note.ID]; !ok {
			continue
		}
		if len(results) == maxResults {
			break
		}

		result := domain.SearchResult{
			NoteID:  note.ID,
			Title:   note.Title,
			Tags:    append([]string(nil), note.Tags...),
			Score:   1.0,
			Matches: explainMatches(note, parsed.Root, opts.CaseSensitive),
		}
		if opts.IncludeBody {
			result.Body = note.Body
		}
		results = append(results, result)
	}

	info.ExecutionTime = time.Since(started)
	for i := range results {
		results[i].QueryInfo = info
	}

	logger.Debug("query %q matched %d notes (%d returned) in %s", query, len(ids), len(results), info.ExecutionTime)
	return results
}

// ValidateQuery runs the lexer and parser only, never the evaluator.
func (e *SearchEngine) ValidateQuery(query string) domain.ValidationResult {
	parsed := parseQuery(query)
	return domain.ValidationResult{Valid: parsed.Valid, Err: parsed.Err}
}

// GetSuggestions proposes completions for a partial query from the
// current snapshot's tag vocabulary.
func (e *SearchEngine) GetSuggestions(query string) []string {
	return suggestCompletions(query, e.snapshot.Load().tags)
}

// GetSyntaxHelp returns fixed documentation lines for the query
// syntax.
func (e *SearchEngine) GetSyntaxHelp() []string {
	return []string{
		"tag:word       match notes whose tags contain a word",
		`title:"phrase" match notes whose title contains a phrase`,
		"body:word      match notes whose body contains a word",
		"word           bare terms match title, body and tags",
		`"some phrase"  quote phrases to keep their spaces`,
		"a AND b        both sides must match (binds tighter than OR)",
		"a OR b         either side matches",
		"NOT a          everything that does not match a",
		"(a OR b)       parentheses override precedence",
		"Examples:",
		"  tag:work AND title:urgent",
		"  (tag:work OR tag:personal) AND NOT tag:archived",
		`  body:"quarterly report" OR title:Q3`,
	}
}

// tagVocabulary collects the distinct tags across all notes, sorted
// case-insensitively with a byte-order tie-break for determinism.
func tagVocabulary(notes []domain.Note) []string {
	seen := map[string]struct{}{}
	var tags []string
	for _, note := range notes {
		for _, tag := range note.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Slice(tags, func(i, j int) bool {
		a, b := strings.ToLower(tags[i]), strings.ToLower(tags[j])
		if a == b {
			return tags[i] < tags[j]
		}
		return a < b
	})
	return tags
}
