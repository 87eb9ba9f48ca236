package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

// testCorpus builds the fixture notes used across engine tests.
func testCorpus() []domain.Note {
	return []domain.Note{
		{
			ID:    "n1",
			Title: "Urgent: quarterly planning",
			Body:  "Prepare the quarterly report before Friday.",
			Tags:  []string{"work", "planning"},
		},
		{
			ID:    "n2",
			Title: "Grocery list",
			Body:  "Milk, eggs, coffee beans.",
			Tags:  []string{"personal"},
		},
		{
			ID:    "n3",
			Title: "Standup notes",
			Body:  "Discussed the urgent deploy and the rollback plan.",
			Tags:  []string{"work", "meeting"},
		},
		{
			ID:    "n4",
			Title: "Old project retrospective",
			Body:  "Archived after the handover.",
			Tags:  []string{"work", "archived"},
		},
		{
			ID:    "n5",
			Title: "Holiday ideas",
			Body:  "Hiking in the Dolomites, urgent passport renewal first.",
			Tags:  []string{"personal", "travel"},
		},
	}
}

func newTestEngine(t *testing.T) *SearchEngine {
	t.Helper()
	engine := NewSearchEngine()
	engine.Initialize(testCorpus())
	return engine
}

func resultIDs(results []domain.SearchResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.NoteID
	}
	return ids
}

func TestSearch_EmptyQueryReturnsEmpty(t *testing.T) {
	engine := newTestEngine(t)

	for _, query := range []string{"", "   ", "\t"} {
		results := engine.Search(context.Background(), query, domain.DefaultSearchOptions())
		assert.Empty(t, results, "%q", query)
	}
}

func TestSearch_InvalidQueryReturnsEmpty(t *testing.T) {
	engine := newTestEngine(t)

	for _, query := range []string{"tag: AND", `title:"unterminated`, "a AND", "(a OR b"} {
		results := engine.Search(context.Background(), query, domain.DefaultSearchOptions())
		assert.Empty(t, results, "%q", query)
	}
}

func TestSearch_TagLeaf(t *testing.T) {
	engine := newTestEngine(t)

	results := engine.Search(context.Background(), "tag:meeting", domain.DefaultSearchOptions())

	assert.Equal(t, []string{"n3"}, resultIDs(results))
}

func TestSearch_TagIsSubstringMatch(t *testing.T) {
	engine := newTestEngine(t)

	// "plan" is a substring of the "planning" tag.
	results := engine.Search(context.Background(), "tag:plan", domain.DefaultSearchOptions())

	assert.Equal(t, []string{"n1"}, resultIDs(results))
}

func TestSearch_AndIntersects(t *testing.T) {
	engine := newTestEngine(t)

	results := engine.Search(context.Background(), "tag:work AND title:urgent", domain.DefaultSearchOptions())

	assert.Equal(t, []string{"n1"}, resultIDs(results))
}

func TestSearch_AndIsCommutativeAsASet(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	left := engine.Search(ctx, "tag:work AND body:urgent", domain.DefaultSearchOptions())
	right := engine.Search(ctx, "body:urgent AND tag:work", domain.DefaultSearchOptions())

	assert.ElementsMatch(t, resultIDs(left), resultIDs(right))
}

func TestSearch_OrIsIdempotent(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	once := engine.Search(ctx, "tag:work", domain.DefaultSearchOptions())
	twice := engine.Search(ctx, "tag:work OR tag:work", domain.DefaultSearchOptions())

	assert.Equal(t, resultIDs(once), resultIDs(twice))
}

func TestSearch_NotIsCorpusRelative(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	// Only n4 is archived; NOT returns the other four in corpus order.
	results := engine.Search(ctx, "NOT tag:archived", domain.DefaultSearchOptions())
	assert.Equal(t, []string{"n1", "n2", "n3", "n5"}, resultIDs(results))

	// Double negation recovers the original set.
	direct := engine.Search(ctx, "tag:archived", domain.DefaultSearchOptions())
	doubled := engine.Search(ctx, "NOT NOT tag:archived", domain.DefaultSearchOptions())
	assert.Equal(t, resultIDs(direct), resultIDs(doubled))
}

func TestSearch_PrecedenceChangesResults(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	// Unparenthesized: tag:personal OR (tag:work AND title:urgent).
	flat := engine.Search(ctx, "tag:personal OR tag:work AND title:urgent", domain.DefaultSearchOptions())
	// Grouped: (tag:personal OR tag:work) AND title:urgent.
	grouped := engine.Search(ctx, "(tag:personal OR tag:work) AND title:urgent", domain.DefaultSearchOptions())

	assert.Equal(t, []string{"n1", "n2", "n5"}, resultIDs(flat))
	assert.Equal(t, []string{"n1"}, resultIDs(grouped))
	assert.NotEqual(t, resultIDs(flat), resultIDs(grouped))
}

func TestSearch_BareTermMatchesAllFields(t *testing.T) {
	engine := newTestEngine(t)

	// "urgent" appears in n1's title, n3's and n5's bodies.
	results := engine.Search(context.Background(), "urgent", domain.DefaultSearchOptions())

	assert.Equal(t, []string{"n1", "n3", "n5"}, resultIDs(results))
}

func TestSearch_CaseFolding(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	insensitive := engine.Search(ctx, "title:URGENT", domain.DefaultSearchOptions())
	assert.Equal(t, []string{"n1"}, resultIDs(insensitive))

	opts := domain.DefaultSearchOptions()
	opts.CaseSensitive = true
	sensitive := engine.Search(ctx, "title:URGENT", opts)
	assert.Empty(t, sensitive)

	sensitive = engine.Search(ctx, "title:Urgent", opts)
	assert.Equal(t, []string{"n1"}, resultIDs(sensitive))
}

func TestSearch_ResultsFollowCorpusOrder(t *testing.T) {
	engine := newTestEngine(t)

	// OR evaluation order must not leak into result order.
	results := engine.Search(context.Background(), "tag:travel OR tag:planning", domain.DefaultSearchOptions())

	assert.Equal(t, []string{"n1", "n5"}, resultIDs(results))
}

func TestSearch_MaxResultsTruncates(t *testing.T) {
	notes := make([]domain.Note, 120)
	for i := range notes {
		notes[i] = domain.Note{
			ID:    fmt.Sprintf("note-%03d", i),
			Title: "common title",
			Tags:  []string{"bulk"},
		}
	}
	engine := NewSearchEngine()
	engine.Initialize(notes)

	results := engine.Search(context.Background(), "tag:bulk", domain.DefaultSearchOptions())
	assert.Len(t, results, domain.DefaultMaxResults)
	assert.Equal(t, "note-000", results[0].NoteID)

	opts := domain.DefaultSearchOptions()
	opts.MaxResults = 7
	results = engine.Search(context.Background(), "tag:bulk", opts)
	assert.Len(t, results, 7)
}

func TestSearch_IncludeBody(t *testing.T) {
	engine := newTestEngine(t)

	opts := domain.DefaultSearchOptions()
	results := engine.Search(context.Background(), "tag:meeting", opts)
	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].Body)

	opts.IncludeBody = false
	results = engine.Search(context.Background(), "tag:meeting", opts)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Body)
}

func TestSearch_ScoreAndQueryInfo(t *testing.T) {
	engine := newTestEngine(t)

	results := engine.Search(context.Background(), "tag:work AND title:urgent", domain.DefaultSearchOptions())
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, "tag:work AND title:urgent", result.QueryInfo.OriginalQuery)
	assert.Equal(t, "tag:work AND title:urgent", result.QueryInfo.ParsedQuery)
	assert.GreaterOrEqual(t, result.QueryInfo.ExecutionTime, time.Duration(0))
}

func TestSearch_CancelledContextReturnsEmpty(t *testing.T) {
	engine := newTestEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := engine.Search(ctx, "tag:work", domain.DefaultSearchOptions())
	assert.Empty(t, results)
}

func TestSearch_EmptyCorpus(t *testing.T) {
	engine := NewSearchEngine()

	results := engine.Search(context.Background(), "tag:work", domain.DefaultSearchOptions())
	assert.Empty(t, results)

	// NOT against an empty corpus is still empty, not a panic.
	results = engine.Search(context.Background(), "NOT tag:work", domain.DefaultSearchOptions())
	assert.Empty(t, results)
}

func TestInitialize_ReplacesSnapshotWholesale(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	require.Len(t, engine.Search(ctx, "tag:work", domain.DefaultSearchOptions()), 3)

	engine.Initialize([]domain.Note{
		{ID: "solo", Title: "only note", Tags: []string{"fresh"}},
	})

	assert.Empty(t, engine.Search(ctx, "tag:work", domain.DefaultSearchOptions()))
	assert.Equal(t, []string{"solo"}, resultIDs(engine.Search(ctx, "tag:fresh", domain.DefaultSearchOptions())))
}

func TestInitialize_CopiesCallerSlice(t *testing.T) {
	notes := testCorpus()
	engine := NewSearchEngine()
	engine.Initialize(notes)

	// Mutating the caller's slice must not affect the snapshot.
	notes[0] = domain.Note{ID: "mutated"}

	results := engine.Search(context.Background(), "title:quarterly", domain.DefaultSearchOptions())
	assert.Equal(t, []string{"n1"}, resultIDs(results))
}

func TestValidateQuery_AgreesWithParse(t *testing.T) {
	engine := newTestEngine(t)

	queries := []string{
		"", "tag:work", "a AND b", "a AND", "(a", `"x y"`, "tag: AND",
		"NOT NOT a", "author:x", "alpha beta",
	}
	for _, q := range queries {
		parsed := parseQuery(q)
		validated := engine.ValidateQuery(q)
		assert.Equal(t, parsed.Valid, validated.Valid, "%q", q)
		assert.Equal(t, parsed.Err, validated.Err, "%q", q)
	}
}

func TestGetSyntaxHelp_IsFixed(t *testing.T) {
	engine := NewSearchEngine()

	help := engine.GetSyntaxHelp()
	require.NotEmpty(t, help)
	assert.Equal(t, help, engine.GetSyntaxHelp())
}

func TestSearch_ConcurrentSearchAndInitialize(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			engine.Initialize(testCorpus())
		}
	}()

	for i := 0; i < 200; i++ {
		results := engine.Search(ctx, "tag:work AND NOT tag:archived", domain.DefaultSearchOptions())
		// Every snapshot is complete, so the result set is always
		// the same even while Initialize races.
		assert.Equal(t, []string{"n1", "n3"}, resultIDs(results))
	}
	<-done
}
