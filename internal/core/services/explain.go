package services

import (
	"strings"
	"unicode/utf8"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

// bodyExcerptLen caps body excerpts before an ellipsis is appended.
const bodyExcerptLen = 100

// explainMatches annotates a matched note with the leaf operators
// that hit it: which field matched and a display excerpt.
//
// Leaves under a NOT are skipped; the note matched because those
// leaves did NOT hit, so there is nothing to highlight. Character
// offsets are only reported for direct title and body leaf matches -
// a documented limitation, not every combinator match carries them.
func explainMatches(note domain.Note, root domain.Operator, caseSensitive bool) []domain.Match {
	var matches []domain.Match
	walkPositiveLeaves(root, func(leaf domain.Operator) {
		if m, ok := leafMatch(note, leaf, caseSensitive); ok {
			matches = append(matches, m)
		}
	})
	return matches
}

// walkPositiveLeaves visits every leaf operator reachable without
// crossing a NOT.
func walkPositiveLeaves(op domain.Operator, visit func(domain.Operator)) {
	switch op := op.(type) {
	case domain.TagOp, domain.TitleOp, domain.BodyOp, domain.TextOp:
		visit(op)
	case domain.AndOp:
		for _, child := range op.Children {
			walkPositiveLeaves(child, visit)
		}
	case domain.OrOp:
		for _, child := range op.Children {
			walkPositiveLeaves(child, visit)
		}
	case domain.GroupOp:
		walkPositiveLeaves(op.Child, visit)
	case domain.NotOp:
		// Negated subtrees contribute no highlights.
	}
}

// leafMatch builds the match annotation for one leaf against one note.
func leafMatch(note domain.Note, op domain.Operator, caseSensitive bool) (domain.Match, bool) {
	switch op := op.(type) {
	case domain.TagOp:
		if anyTagContains(note.Tags, op.Value, caseSensitive) {
			return tagMatch(note), true
		}

	case domain.TitleOp:
		if start, end, ok := indexFold(note.Title, op.Value, caseSensitive); ok {
			return titleMatch(note, start, end), true
		}

	case domain.BodyOp:
		if start, end, ok := indexFold(note.Body, op.Value, caseSensitive); ok {
			return bodyMatch(note, start, end), true
		}

	case domain.TextOp:
		// Bare terms report the first field that hit, in the same
		// order the evaluator checks: title, body, tags.
		if start, end, ok := indexFold(note.Title, op.Value, caseSensitive); ok {
			return titleMatch(note, start, end), true
		}
		if start, end, ok := indexFold(note.Body, op.Value, caseSensitive); ok {
			return bodyMatch(note, start, end), true
		}
		if anyTagContains(note.Tags, op.Value, caseSensitive) {
			return tagMatch(note), true
		}
	}

	return domain.Match{}, false
}

func tagMatch(note domain.Note) domain.Match {
	return domain.Match{
		Field:   domain.MatchTags,
		Excerpt: strings.Join(note.Tags, ", "),
	}
}

func titleMatch(note domain.Note, start, end int) domain.Match {
	return domain.Match{
		Field:   domain.MatchTitle,
		Excerpt: note.Title,
		Indices: []int{start, end},
	}
}

func bodyMatch(note domain.Note, start, end int) domain.Match {
	return domain.Match{
		Field:   domain.MatchBody,
		Excerpt: bodyExcerpt(note.Body, start),
		Indices: []int{start, end},
	}
}

// bodyExcerpt returns a window of up to bodyExcerptLen runes around
// the match, with ellipses marking trimmed ends.
func bodyExcerpt(body string, matchStart int) string {
	runes := []rune(body)
	if len(runes) <= bodyExcerptLen {
		return body
	}

	// Open the window slightly before the match so the hit is
	// visible with some leading context.
	start := matchStart - bodyExcerptLen/4
	if start < 0 {
		start = 0
	}
	end := start + bodyExcerptLen
	if end > len(runes) {
		end = len(runes)
		start = end - bodyExcerptLen
	}

	excerpt := string(runes[start:end])
	if start > 0 {
		excerpt = "..." + excerpt
	}
	if end < len(runes) {
		excerpt += "..."
	}
	return excerpt
}

// indexFold locates needle in haystack, case-folded unless the search
// is case-sensitive, returning [start, end) rune offsets.
func indexFold(haystack, needle string, caseSensitive bool) (start, end int, ok bool) {
	if needle == "" {
		return 0, 0, false
	}

	h, n := haystack, needle
	if !caseSensitive {
		h = strings.ToLower(haystack)
		n = strings.ToLower(needle)
	}

	byteStart := strings.Index(h, n)
	if byteStart < 0 {
		return 0, 0, false
	}

	start = utf8.RuneCountInString(h[:byteStart])
	end = start + utf8.RuneCountInString(n)
	return start, end, true
}
