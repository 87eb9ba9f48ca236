package services

import (
	"context"
	"strings"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
	"github.com/blaster151/zettelview-sub001/internal/logger"
)

// idSet is a set of note IDs. Combinators operate on idSets and the
// final corpus scan restores stable ordering.
type idSet map[string]struct{}

// evalOperator walks the operator tree against a corpus snapshot and
// returns the matching note IDs. It is total: a nil or unknown node
// degrades to an empty set, never a panic. Cost is
// O(nodes x corpus), which is the accepted bound for small in-memory
// note collections.
func evalOperator(ctx context.Context, op domain.Operator, snap *corpusSnapshot, caseSensitive bool) idSet {
	if ctx.Err() != nil {
		return idSet{}
	}

	switch op := op.(type) {
	case nil:
		return idSet{}

	case domain.TagOp, domain.TitleOp, domain.BodyOp, domain.TextOp:
		return scanLeaf(op, snap, caseSensitive)

	case domain.AndOp:
		// Left-to-right pairwise intersection, short-circuiting to
		// empty as soon as any intersection empties out.
		var result idSet
		for i, child := range op.Children {
			if i == 0 {
				result = evalOperator(ctx, child, snap, caseSensitive)
				continue
			}
			if len(result) == 0 {
				return idSet{}
			}
			result = intersect(result, evalOperator(ctx, child, snap, caseSensitive))
		}
		return result

	case domain.OrOp:
		result := idSet{}
		for _, child := range op.Children {
			for id := range evalOperator(ctx, child, snap, caseSensitive) {
				result[id] = struct{}{}
			}
		}
		return result

	case domain.NotOp:
		// NOT complements against the full current snapshot. Inside
		// AND/OR this means "AND with the full-corpus complement",
		// not a complement of some inner sub-result.
		excluded := evalOperator(ctx, op.Child, snap, caseSensitive)
		result := idSet{}
		for _, note := range snap.notes {
			if _, ok := excluded[note.ID]; !ok {
				result[note.ID] = struct{}{}
			}
		}
		return result

	case domain.GroupOp:
		return evalOperator(ctx, op.Child, snap, caseSensitive)

	default:
		// The Operator set is sealed, so this is unreachable from
		// within the module; degrade instead of panicking anyway.
		logger.Warn("evaluator: unknown operator %T evaluates to no matches", op)
		return idSet{}
	}
}

// scanLeaf collects the IDs of every note the leaf operator matches.
func scanLeaf(op domain.Operator, snap *corpusSnapshot, caseSensitive bool) idSet {
	result := idSet{}
	for _, note := range snap.notes {
		if noteMatchesLeaf(note, op, caseSensitive) {
			result[note.ID] = struct{}{}
		}
	}
	return result
}

// noteMatchesLeaf applies leaf semantics to a single note:
//
//   - tag: any tag contains the value as a substring
//   - title, body: substring containment on the field
//   - bare text: title OR body OR any tag
func noteMatchesLeaf(note domain.Note, op domain.Operator, caseSensitive bool) bool {
	switch op := op.(type) {
	case domain.TagOp:
		return anyTagContains(note.Tags, op.Value, caseSensitive)
	case domain.TitleOp:
		return containsFold(note.Title, op.Value, caseSensitive)
	case domain.BodyOp:
		return containsFold(note.Body, op.Value, caseSensitive)
	case domain.TextOp:
		return containsFold(note.Title, op.Value, caseSensitive) ||
			containsFold(note.Body, op.Value, caseSensitive) ||
			anyTagContains(note.Tags, op.Value, caseSensitive)
	}
	return false
}

func anyTagContains(tags []string, value string, caseSensitive bool) bool {
	for _, tag := range tags {
		if containsFold(tag, value, caseSensitive) {
			return true
		}
	}
	return false
}

// containsFold reports substring containment, case-folded unless the
// search is case-sensitive.
func containsFold(haystack, needle string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(haystack, needle)
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func intersect(a, b idSet) idSet {
	// Iterate the smaller side.
	if len(b) < len(a) {
		a, b = b, a
	}
	result := idSet{}
	for id := range a {
		if _, ok := b[id]; ok {
			result[id] = struct{}{}
		}
	}
	return result
}
