package services

import (
	"strings"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

var (
	fieldSuggestions   = []string{"tag:", "title:", "body:"}
	booleanSuggestions = []string{"AND ", "OR ", "NOT "}
)

// suggestCompletions proposes completions for a partial query given
// the corpus's distinct tag vocabulary (already sorted
// case-insensitively):
//
//   - at the start of a new term: field keywords
//   - after a complete primary: boolean keywords
//   - after "tag:": prefix-filtered tag values
//   - mid-word: keywords the word is a prefix of
func suggestCompletions(query string, tags []string) []string {
	if strings.TrimSpace(query) == "" {
		return fieldSuggestions
	}

	lastWord := trailingWord(query)

	// tag:par -> tag:parenting, tag:parties, ...
	// The dangling "tag:" form fails the lexer, so it is handled
	// textually before tokenizing.
	if field, partial, ok := splitFieldWord(lastWord); ok {
		if field != "tag" {
			return nil
		}
		return completeTags(partial, tags)
	}

	tokens, err := lex(query)
	if err != nil {
		return nil
	}
	tokens = tokens[:len(tokens)-1] // drop EOF
	if len(tokens) == 0 {
		return fieldSuggestions
	}
	last := tokens[len(tokens)-1]

	if lastWord == "" {
		// Cursor sits at the start of a new term.
		switch last.Kind {
		case domain.TokenTerm, domain.TokenPhrase, domain.TokenRParen:
			return booleanSuggestions
		case domain.TokenAnd, domain.TokenOr, domain.TokenNot, domain.TokenLParen:
			return fieldSuggestions
		default:
			return nil
		}
	}

	// Cursor is mid-word: offer keywords the fragment could become.
	var completions []string
	lowered := strings.ToLower(lastWord)
	for _, f := range fieldSuggestions {
		if strings.HasPrefix(f, lowered) {
			completions = append(completions, f)
		}
	}
	if len(tokens) >= 2 && isPrimaryEnd(tokens[len(tokens)-2].Kind) {
		upper := strings.ToUpper(lastWord)
		for _, b := range booleanSuggestions {
			if strings.HasPrefix(b, upper) {
				completions = append(completions, b)
			}
		}
	}
	return completions
}

func isPrimaryEnd(kind domain.TokenKind) bool {
	return kind == domain.TokenTerm || kind == domain.TokenPhrase || kind == domain.TokenRParen
}

// completeTags returns "tag:" completions for every vocabulary entry
// with the given prefix, compared case-insensitively. The vocabulary
// is already sorted, so completions come back in sorted order.
func completeTags(partial string, tags []string) []string {
	lowered := strings.ToLower(partial)
	var completions []string
	for _, tag := range tags {
		if strings.HasPrefix(strings.ToLower(tag), lowered) {
			completions = append(completions, "tag:"+tag)
		}
	}
	return completions
}

// splitFieldWord splits a word of the form field:partial, reporting
// ok only for the recognised field names.
func splitFieldWord(word string) (field, partial string, ok bool) {
	colon := strings.IndexRune(word, ':')
	if colon <= 0 {
		return "", "", false
	}
	field = strings.ToLower(word[:colon])
	if !fieldNames[field] {
		return "", "", false
	}
	return field, word[colon+1:], true
}

// trailingWord returns the fragment between the last separator and
// the end of the query. Empty when the query ends on a separator.
func trailingWord(query string) string {
	end := len(query)
	for i := end - 1; i >= 0; i-- {
		switch query[i] {
		case ' ', '\t', '\n', '\r', '(', ')':
			return query[i+1 : end]
		}
	}
	return query
}
