package services

import (
	"fmt"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

// parser is a recursive-descent parser over a token stream.
//
// Grammar, lowest to highest precedence:
//
//	expr     := orExpr
//	orExpr   := andExpr (OR andExpr)*
//	andExpr  := notExpr (AND notExpr)*
//	notExpr  := NOT notExpr | primary
//	primary  := '(' expr ')' | FIELD (TERM|PHRASE) | TERM | PHRASE
//
// Two adjacent primaries without an operator between them are a parse
// error; the grammar requires explicit AND/OR.
type parser struct {
	tokens []domain.Token
	pos    int
}

// parseQuery lexes and parses a raw query string. It never panics and
// never returns a Go error: failures land in ParsedQuery.Err. An
// empty query parses to a valid ParsedQuery with a nil Root, which
// evaluates to no results.
func parseQuery(query string) domain.ParsedQuery {
	tokens, err := lex(query)
	if err != nil {
		return domain.ParsedQuery{Valid: false, Err: err.Error()}
	}

	p := &parser{tokens: tokens}
	if p.peek().Kind == domain.TokenEOF {
		return domain.ParsedQuery{Valid: true}
	}

	root, perr := p.parseExpr()
	if perr != nil {
		return domain.ParsedQuery{Valid: false, Err: perr.Error()}
	}

	if tok := p.peek(); tok.Kind != domain.TokenEOF {
		return domain.ParsedQuery{
			Valid: false,
			Err:   fmt.Sprintf("unexpected %s %q at position %d; expected AND, OR or end of query", tok.Kind, tok.Value, tok.Pos),
		}
	}

	return domain.ParsedQuery{Valid: true, Root: root}
}

func (p *parser) parseExpr() (domain.Operator, error) {
	return p.parseOr()
}

func (p *parser) parseOr() (domain.Operator, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	children := []domain.Operator{first}
	for p.peek().Kind == domain.TokenOr {
		p.next()
		child, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	if len(children) == 1 {
		return first, nil
	}
	return domain.OrOp{Children: children}, nil
}

func (p *parser) parseAnd() (domain.Operator, error) {
	first, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	children := []domain.Operator{first}
	for p.peek().Kind == domain.TokenAnd {
		p.next()
		child, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	if len(children) == 1 {
		return first, nil
	}
	return domain.AndOp{Children: children}, nil
}

func (p *parser) parseNot() (domain.Operator, error) {
	if p.peek().Kind == domain.TokenNot {
		p.next()
		child, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return domain.NotOp{Child: child}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (domain.Operator, error) {
	tok := p.next()

	switch tok.Kind {
	case domain.TokenLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing := p.next()
		if closing.Kind != domain.TokenRParen {
			return nil, fmt.Errorf("unmatched parenthesis: expected ) for ( at position %d", tok.Pos)
		}
		return domain.GroupOp{Child: inner}, nil

	case domain.TokenField:
		if !fieldNames[tok.Value] {
			return nil, fmt.Errorf("unknown field %q at position %d; expected tag, title or body", tok.Value, tok.Pos)
		}
		value := p.next()
		if value.Kind != domain.TokenTerm && value.Kind != domain.TokenPhrase {
			return nil, fmt.Errorf("expected a term or quoted phrase after %s: at position %d", tok.Value, tok.Pos)
		}
		switch tok.Value {
		case "tag":
			return domain.TagOp{Value: value.Value}, nil
		case "title":
			return domain.TitleOp{Value: value.Value}, nil
		default:
			return domain.BodyOp{Value: value.Value}, nil
		}

	case domain.TokenTerm, domain.TokenPhrase:
		return domain.TextOp{Value: tok.Value}, nil

	case domain.TokenAnd, domain.TokenOr:
		return nil, fmt.Errorf("unexpected %s at position %d; operator needs an expression on both sides", tok.Kind, tok.Pos)

	case domain.TokenRParen:
		return nil, fmt.Errorf("unmatched parenthesis: unexpected ) at position %d", tok.Pos)

	case domain.TokenEOF:
		return nil, fmt.Errorf("unexpected end of query; expected a term, phrase or ( at position %d", tok.Pos)
	}

	return nil, fmt.Errorf("unexpected token %q at position %d", tok.Value, tok.Pos)
}

// peek returns the current token without consuming it.
func (p *parser) peek() domain.Token {
	if p.pos >= len(p.tokens) {
		return domain.Token{Kind: domain.TokenEOF, Pos: p.pos}
	}
	return p.tokens[p.pos]
}

// next consumes and returns the current token.
func (p *parser) next() domain.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}
