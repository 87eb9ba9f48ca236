package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

func TestExplain_TitleMatchIsVerbatimWithIndices(t *testing.T) {
	note := domain.Note{ID: "n", Title: "Urgent: quarterly planning"}

	matches := explainMatches(note, domain.TitleOp{Value: "quarterly"}, false)

	require.Len(t, matches, 1)
	assert.Equal(t, domain.MatchTitle, matches[0].Field)
	assert.Equal(t, "Urgent: quarterly planning", matches[0].Excerpt)
	assert.Equal(t, []int{8, 17}, matches[0].Indices)
}

func TestExplain_TagMatchJoinsTagList(t *testing.T) {
	note := domain.Note{ID: "n", Tags: []string{"work", "meeting"}}

	matches := explainMatches(note, domain.TagOp{Value: "meet"}, false)

	require.Len(t, matches, 1)
	assert.Equal(t, domain.MatchTags, matches[0].Field)
	assert.Equal(t, "work, meeting", matches[0].Excerpt)
	assert.Empty(t, matches[0].Indices, "tag hits carry no offsets")
}

func TestExplain_ShortBodyIsNotTruncated(t *testing.T) {
	note := domain.Note{ID: "n", Body: "short body with a keyword inside"}

	matches := explainMatches(note, domain.BodyOp{Value: "keyword"}, false)

	require.Len(t, matches, 1)
	assert.Equal(t, domain.MatchBody, matches[0].Field)
	assert.Equal(t, note.Body, matches[0].Excerpt)
}

func TestExplain_LongBodyExcerptIsCappedWithEllipsis(t *testing.T) {
	body := strings.Repeat("padding ", 40) + "needle" + strings.Repeat(" trailer", 40)
	note := domain.Note{ID: "n", Body: body}

	matches := explainMatches(note, domain.BodyOp{Value: "needle"}, false)

	require.Len(t, matches, 1)
	excerpt := matches[0].Excerpt
	assert.Contains(t, excerpt, "needle", "the hit must be visible in the excerpt")
	assert.True(t, strings.HasPrefix(excerpt, "...") || strings.HasSuffix(excerpt, "..."))
	// Window of 100 runes plus at most two ellipses.
	assert.LessOrEqual(t, len([]rune(excerpt)), bodyExcerptLen+6)
}

func TestExplain_BareTermReportsFirstMatchingField(t *testing.T) {
	note := domain.Note{
		ID:    "n",
		Title: "deploy checklist",
		Body:  "steps for the deploy",
		Tags:  []string{"deploy"},
	}

	// Title wins when several fields contain the term.
	matches := explainMatches(note, domain.TextOp{Value: "deploy"}, false)
	require.Len(t, matches, 1)
	assert.Equal(t, domain.MatchTitle, matches[0].Field)

	// Without a title hit, the body is reported.
	note.Title = "checklist"
	matches = explainMatches(note, domain.TextOp{Value: "deploy"}, false)
	require.Len(t, matches, 1)
	assert.Equal(t, domain.MatchBody, matches[0].Field)
}

func TestExplain_CombinatorsCollectAllLeafHits(t *testing.T) {
	note := domain.Note{
		ID:    "n",
		Title: "urgent deploy",
		Tags:  []string{"work"},
	}
	root := domain.AndOp{Children: []domain.Operator{
		domain.TagOp{Value: "work"},
		domain.TitleOp{Value: "urgent"},
	}}

	matches := explainMatches(note, root, false)

	require.Len(t, matches, 2)
	assert.Equal(t, domain.MatchTags, matches[0].Field)
	assert.Equal(t, domain.MatchTitle, matches[1].Field)
}

func TestExplain_NegatedLeavesProduceNoHighlights(t *testing.T) {
	note := domain.Note{ID: "n", Title: "urgent", Tags: []string{"work"}}
	root := domain.AndOp{Children: []domain.Operator{
		domain.TitleOp{Value: "urgent"},
		domain.NotOp{Child: domain.TagOp{Value: "archived"}},
	}}

	matches := explainMatches(note, root, false)

	require.Len(t, matches, 1)
	assert.Equal(t, domain.MatchTitle, matches[0].Field)
}

func TestSearch_MatchesAreAttached(t *testing.T) {
	engine := newTestEngine(t)

	results := engine.Search(context.Background(), "tag:work AND title:urgent", domain.DefaultSearchOptions())

	require.Len(t, results, 1)
	require.Len(t, results[0].Matches, 2)
	assert.Equal(t, domain.MatchTags, results[0].Matches[0].Field)
	assert.Equal(t, domain.MatchTitle, results[0].Matches[1].Field)
}

func TestIndexFold(t *testing.T) {
	start, end, ok := indexFold("Hello World", "world", false)
	require.True(t, ok)
	assert.Equal(t, 6, start)
	assert.Equal(t, 11, end)

	_, _, ok = indexFold("Hello World", "world", true)
	assert.False(t, ok)

	_, _, ok = indexFold("anything", "", false)
	assert.False(t, ok, "empty needles never match")

	// Offsets are rune-based, not byte-based.
	start, end, ok = indexFold("caffè latte", "latte", false)
	require.True(t, ok)
	assert.Equal(t, 6, start)
	assert.Equal(t, 11, end)
}
