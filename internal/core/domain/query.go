package domain

import "strings"

// TokenKind identifies the lexical class of a query token.
type TokenKind int

// Token kinds produced by the query lexer.
const (
	TokenField TokenKind = iota
	TokenAnd
	TokenOr
	TokenNot
	TokenLParen
	TokenRParen
	TokenPhrase
	TokenTerm
	TokenEOF
)

// String returns a readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenField:
		return "FIELD"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenNot:
		return "NOT"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenPhrase:
		return "PHRASE"
	case TokenTerm:
		return "TERM"
	case TokenEOF:
		return "EOF"
	}
	return "UNKNOWN"
}

// Token is a single lexical unit of a query string.
type Token struct {
	// Kind is the lexical class.
	Kind TokenKind

	// Value is the token text. For TokenField it is the lowercased
	// field name without the trailing colon; for TokenPhrase the
	// quote characters are stripped.
	Value string

	// Pos is the rune offset of the token in the original query.
	Pos int
}

// Operator is a node in the parsed query tree.
//
// The set of implementations is closed: TagOp, TitleOp, BodyOp and
// TextOp are the leaf operators, AndOp, OrOp, NotOp and GroupOp the
// combinators. The unexported marker method keeps packages outside
// domain from adding node kinds, so evaluator type switches can
// enumerate every case.
type Operator interface {
	isOperator()

	// String renders the node back into query syntax.
	String() string
}

// TagOp matches notes whose tags contain the value as a substring.
type TagOp struct {
	Value string
}

// TitleOp matches notes whose title contains the value.
type TitleOp struct {
	Value string
}

// BodyOp matches notes whose body contains the value.
type BodyOp struct {
	Value string
}

// TextOp matches notes whose title, body or tags contain the value.
// Bare terms without a field prefix parse to this node.
type TextOp struct {
	Value string
}

// AndOp intersects its children. It always has at least two children.
type AndOp struct {
	Children []Operator
}

// OrOp unions its children. It always has at least two children.
type OrOp struct {
	Children []Operator
}

// NotOp complements its child against the full corpus snapshot.
type NotOp struct {
	Child Operator
}

// GroupOp is a parenthesised subexpression. Evaluation passes
// straight through; the node exists so the rendered query keeps
// the author's grouping.
type GroupOp struct {
	Child Operator
}

func (TagOp) isOperator()   {}
func (TitleOp) isOperator() {}
func (BodyOp) isOperator()  {}
func (TextOp) isOperator()  {}
func (AndOp) isOperator()   {}
func (OrOp) isOperator()    {}
func (NotOp) isOperator()   {}
func (GroupOp) isOperator() {}

func (op TagOp) String() string   { return "tag:" + quoteValue(op.Value) }
func (op TitleOp) String() string { return "title:" + quoteValue(op.Value) }
func (op BodyOp) String() string  { return "body:" + quoteValue(op.Value) }
func (op TextOp) String() string  { return quoteValue(op.Value) }

func (op AndOp) String() string { return joinChildren(op.Children, " AND ") }
func (op OrOp) String() string  { return joinChildren(op.Children, " OR ") }

func (op NotOp) String() string {
	if op.Child == nil {
		return "NOT"
	}
	return "NOT " + op.Child.String()
}

func (op GroupOp) String() string {
	if op.Child == nil {
		return "()"
	}
	return "(" + op.Child.String() + ")"
}

func joinChildren(children []Operator, sep string) string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		parts = append(parts, c.String())
	}
	return strings.Join(parts, sep)
}

// quoteValue wraps a value in quotes when it would not survive a
// round trip through the lexer as a bare term.
func quoteValue(v string) string {
	if strings.ContainsAny(v, " \t()\"") || v == "" {
		return `"` + strings.ReplaceAll(v, `"`, ``) + `"`
	}
	return v
}

// ParsedQuery is the outcome of lexing and parsing one query string.
// Lex and parse failures never surface as Go errors; they land in
// Err with Valid set to false, and callers skip evaluation.
type ParsedQuery struct {
	// Valid reports whether the query parsed cleanly.
	Valid bool

	// Root is the operator tree. A nil Root with Valid=true means
	// the query was empty and matches nothing.
	Root Operator

	// Err holds the lex or parse error message when Valid is false.
	Err string
}

// ValidationResult is the inline-feedback form of ParsedQuery,
// returned to UIs while the user is still typing.
type ValidationResult struct {
	// Valid reports whether the query parsed cleanly.
	Valid bool

	// Err holds the error message when Valid is false.
	Err string
}
