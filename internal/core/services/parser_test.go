package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

func TestParseQuery_EmptyQueryIsValidWithNilRoot(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		parsed := parseQuery(query)
		assert.True(t, parsed.Valid, "%q", query)
		assert.Nil(t, parsed.Root, "%q", query)
		assert.Empty(t, parsed.Err, "%q", query)
	}
}

func TestParseQuery_Leaves(t *testing.T) {
	tests := []struct {
		query string
		want  domain.Operator
	}{
		{"urgent", domain.TextOp{Value: "urgent"}},
		{`"project kickoff"`, domain.TextOp{Value: "project kickoff"}},
		{"tag:work", domain.TagOp{Value: "work"}},
		{"title:urgent", domain.TitleOp{Value: "urgent"}},
		{`body:"lorem ipsum"`, domain.BodyOp{Value: "lorem ipsum"}},
		{"TAG:Work", domain.TagOp{Value: "Work"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			parsed := parseQuery(tt.query)
			require.True(t, parsed.Valid, parsed.Err)
			assert.Equal(t, tt.want, parsed.Root)
		})
	}
}

func TestParseQuery_Precedence(t *testing.T) {
	// AND binds tighter than OR: a OR b AND c == a OR (b AND c).
	parsed := parseQuery("a OR b AND c")
	require.True(t, parsed.Valid, parsed.Err)

	assert.Equal(t, domain.OrOp{Children: []domain.Operator{
		domain.TextOp{Value: "a"},
		domain.AndOp{Children: []domain.Operator{
			domain.TextOp{Value: "b"},
			domain.TextOp{Value: "c"},
		}},
	}}, parsed.Root)
}

func TestParseQuery_NotBindsTighterThanAnd(t *testing.T) {
	parsed := parseQuery("NOT a AND b")
	require.True(t, parsed.Valid, parsed.Err)

	assert.Equal(t, domain.AndOp{Children: []domain.Operator{
		domain.NotOp{Child: domain.TextOp{Value: "a"}},
		domain.TextOp{Value: "b"},
	}}, parsed.Root)
}

func TestParseQuery_ParenthesesOverridePrecedence(t *testing.T) {
	parsed := parseQuery("(a OR b) AND c")
	require.True(t, parsed.Valid, parsed.Err)

	assert.Equal(t, domain.AndOp{Children: []domain.Operator{
		domain.GroupOp{Child: domain.OrOp{Children: []domain.Operator{
			domain.TextOp{Value: "a"},
			domain.TextOp{Value: "b"},
		}}},
		domain.TextOp{Value: "c"},
	}}, parsed.Root)
}

func TestParseQuery_NestedNot(t *testing.T) {
	parsed := parseQuery("NOT NOT tag:work")
	require.True(t, parsed.Valid, parsed.Err)

	assert.Equal(t, domain.NotOp{Child: domain.NotOp{Child: domain.TagOp{Value: "work"}}}, parsed.Root)
}

func TestParseQuery_NaryChains(t *testing.T) {
	parsed := parseQuery("a AND b AND c AND d")
	require.True(t, parsed.Valid, parsed.Err)

	and, ok := parsed.Root.(domain.AndOp)
	require.True(t, ok)
	assert.Len(t, and.Children, 4)
}

func TestParseQuery_Deterministic(t *testing.T) {
	const query = `(tag:work OR tag:personal) AND NOT title:"weekly sync"`

	first := parseQuery(query)
	second := parseQuery(query)

	require.True(t, first.Valid)
	assert.Equal(t, first, second, "parsing the same query twice must yield structurally identical trees")
}

func TestParseQuery_Errors(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		errPart string
	}{
		{"dangling and", "a AND", "unexpected end of query"},
		{"leading or", "OR a", "operator needs an expression"},
		{"double operator", "a AND OR b", "operator needs an expression"},
		{"unclosed paren", "(a OR b", "unmatched parenthesis"},
		{"stray rparen", "a)", "unexpected"},
		{"only rparen", ")", "unmatched parenthesis"},
		{"unknown field", "author:smith", "unknown field"},
		{"dangling field", "tag: AND", "immediately followed"},
		{"unterminated phrase", `title:"unterminated`, "unterminated phrase"},
		{"bare not", "NOT", "unexpected end of query"},
		{"adjacent terms need operator", "alpha beta", "expected AND, OR or end of query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := parseQuery(tt.query)
			assert.False(t, parsed.Valid)
			assert.Nil(t, parsed.Root)
			assert.Contains(t, parsed.Err, tt.errPart)
		})
	}
}

func TestParseQuery_NeverPanics(t *testing.T) {
	queries := []string{
		"((((", "))))", `"""`, "tag:tag:tag", "AND AND AND",
		"NOT () OR", "(tag:)", "a AND (b OR NOT)", ":", "::",
	}
	for _, q := range queries {
		assert.NotPanics(t, func() { parseQuery(q) }, "%q", q)
	}
}
