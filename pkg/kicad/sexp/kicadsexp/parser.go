package kicadsexp

import (
	"fmt"
	"io"
)

// Parser parses S-expressions from a lexer
type Parser struct {
	lexer   *Lexer
	current Token
	depth   int
}

// NewParser creates a new parser from an io.Reader
func NewParser(r io.Reader) *Parser {
	return &Parser{
		lexer: NewLexer(r),
	}
}

// ParseAll parses all top-level S-expressions from the input
func (p *Parser) ParseAll() ([]Sexp, error) {
	var result []Sexp

	if err := p.advance(); err != nil {
		return nil, err
	}

	for p.current.Type != TokenEOF {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		result = append(result, expr)

		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (p *Parser) advance() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// parseExpr parses a single S-expression
func (p *Parser) parseExpr() (Sexp, error) {
	switch p.current.Type {
	case TokenLeftParen:
		return p.parseList()

	case TokenSymbol, TokenString:
		return Symbol(p.current.Value), nil

	case TokenRightParen:
		return nil, fmt.Errorf("line %d: unexpected ')'", p.current.Line)

	default:
		return nil, fmt.Errorf("line %d: unexpected %v", p.current.Line, p.current.Type)
	}
}

// parseList parses a list: ( ... )
func (p *Parser) parseList() (Sexp, error) {
	open := p.current.Line
	p.depth++
	defer func() { p.depth-- }()

	var elements []Sexp

	for {
		if err := p.advance(); err != nil {
			return nil, err
		}

		if p.current.Type == TokenRightParen {
			break
		}

		if p.current.Type == TokenEOF {
			return nil, fmt.Errorf("line %d: unexpected EOF in list opened here (depth %d)", open, p.depth)
		}

		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
	}

	return &List{elements: elements}, nil
}
