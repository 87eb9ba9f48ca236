package services

import (
	"fmt"
	"strings"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

// fieldNames are the recognised field prefixes, lowercased.
var fieldNames = map[string]bool{
	"tag":   true,
	"title": true,
	"body":  true,
}

// lexer walks a query string rune by rune.
type lexer struct {
	input []rune
	pos   int
}

// lex tokenizes a raw query string. The returned stream always ends
// with a TokenEOF. A lex failure (unterminated phrase, field prefix
// with no value) returns a nil stream and the error.
func lex(query string) ([]domain.Token, error) {
	l := &lexer{input: []rune(query)}
	var tokens []domain.Token

	for {
		l.skipSpaces()
		if l.eof() {
			break
		}

		start := l.pos
		switch r := l.peek(); {
		case r == '(':
			l.pos++
			tokens = append(tokens, domain.Token{Kind: domain.TokenLParen, Value: "(", Pos: start})

		case r == ')':
			l.pos++
			tokens = append(tokens, domain.Token{Kind: domain.TokenRParen, Value: ")", Pos: start})

		case r == '"':
			value, err := l.readPhrase()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, domain.Token{Kind: domain.TokenPhrase, Value: value, Pos: start})

		default:
			word := l.readWord()
			toks, err := l.wordTokens(word, start)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, toks...)
		}
	}

	tokens = append(tokens, domain.Token{Kind: domain.TokenEOF, Pos: len(l.input)})
	return tokens, nil
}

// wordTokens classifies a bare word: boolean keyword, field prefix
// with its value, or plain term.
func (l *lexer) wordTokens(word string, start int) ([]domain.Token, error) {
	// Boolean keywords match whole words only, case-insensitively.
	switch strings.ToUpper(word) {
	case "AND":
		return []domain.Token{{Kind: domain.TokenAnd, Value: word, Pos: start}}, nil
	case "OR":
		return []domain.Token{{Kind: domain.TokenOr, Value: word, Pos: start}}, nil
	case "NOT":
		return []domain.Token{{Kind: domain.TokenNot, Value: word, Pos: start}}, nil
	}

	colon := strings.IndexRune(word, ':')
	if colon <= 0 {
		return []domain.Token{{Kind: domain.TokenTerm, Value: word, Pos: start}}, nil
	}

	field := strings.ToLower(word[:colon])
	rest := word[colon+1:]
	tokens := []domain.Token{{Kind: domain.TokenField, Value: field, Pos: start}}

	if rest != "" {
		tokens = append(tokens, domain.Token{Kind: domain.TokenTerm, Value: rest, Pos: start + colon + 1})
		return tokens, nil
	}

	// The value may be a quoted phrase butted against the colon,
	// e.g. title:"meeting notes". Anything else (space, EOF) means
	// the prefix dangles.
	if !l.eof() && l.peek() == '"' {
		phraseStart := l.pos
		value, err := l.readPhrase()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, domain.Token{Kind: domain.TokenPhrase, Value: value, Pos: phraseStart})
		return tokens, nil
	}

	return nil, fmt.Errorf("field prefix %q at position %d must be immediately followed by a term or quoted phrase", field+":", start)
}

// readPhrase consumes a quoted phrase, preserving internal whitespace
// verbatim. The opening quote must be under the cursor.
func (l *lexer) readPhrase() (string, error) {
	start := l.pos
	l.pos++ // opening quote
	var sb strings.Builder
	for !l.eof() {
		r := l.peek()
		l.pos++
		if r == '"' {
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
	return "", fmt.Errorf("unterminated phrase starting at position %d", start)
}

// readWord consumes runes until whitespace, a parenthesis or a quote.
func (l *lexer) readWord() string {
	start := l.pos
	for !l.eof() {
		switch r := l.peek(); {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return string(l.input[start:l.pos])
		case r == '(' || r == ')' || r == '"':
			return string(l.input[start:l.pos])
		default:
			l.pos++
		}
	}
	return string(l.input[start:l.pos])
}

func (l *lexer) skipSpaces() {
	for !l.eof() {
		switch l.peek() {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) peek() rune { return l.input[l.pos] }
func (l *lexer) eof() bool  { return l.pos >= len(l.input) }
