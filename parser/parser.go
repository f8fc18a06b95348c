/*
File    : noa/parser/parser.go

Package parser implements a recursive-descent parser: it consumes a
token.Token stream from the lexer and produces a []ast.Stmt. Split by
grammar section across parser_expressions.go, parser_statements.go,
parser_controls.go, parser_functions.go, parser_literals.go.

The parser is fail-fast: the first syntax error aborts parsing and is
returned as a *signal.Error. A synchronize helper is kept for a future
multi-error mode but Parse does not currently call it on its own error
path.
*/
package parser

import (
	"github.com/noa-lang/noa/ast"
	"github.com/noa-lang/noa/lexer"
	"github.com/noa-lang/noa/signal"
	"github.com/noa-lang/noa/token"
)

// maxArgs is the cap on call argument lists and function parameter lists.
const maxArgs = 255

// Parser holds the token stream and current read position.
type Parser struct {
	tokens  []token.Token
	current int
}

// New tokenizes src and returns a Parser ready to call Parse, or the
// lexical error if scanning failed.
func New(src string) (*Parser, *signal.Error) {
	toks, err := lexer.New(src).ScanTokens()
	if err != nil {
		return nil, err
	}
	return &Parser{tokens: toks}, nil
}

// NewFromTokens builds a Parser directly over an already-scanned token
// stream (used by tests exercising the parser in isolation).
func NewFromTokens(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs the top-level loop: repeatedly parse a declaration until EOF.
func (p *Parser) Parse() ([]ast.Stmt, *signal.Error) {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// ---- token stream helpers ----

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Type == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(typ token.Type) bool {
	if p.isAtEnd() {
		return typ == token.EOF
	}
	return p.peek().Type == typ
}

// match advances and returns true if the current token is one of typs.
func (p *Parser) match(typs ...token.Type) bool {
	for _, typ := range typs {
		if p.check(typ) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token type or reports a syntax error
// carrying the offending token's line and lexeme.
func (p *Parser) consume(typ token.Type, message string) (token.Token, *signal.Error) {
	if p.check(typ) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAt(p.peek(), message)
}

func (p *Parser) errorAt(tok token.Token, message string) *signal.Error {
	lexeme := tok.Lexeme
	if tok.Type == token.EOF {
		lexeme = "EOF"
	}
	return signal.New(tok.Line, lexeme, "%s", message)
}

// synchronize advances past tokens until it reaches a statement-boundary
// keyword or a semicolon, so a future multi-error parser could keep
// reporting after a recoverable error. Unused by the current
// fail-fast Parse, kept for that extension point.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.RETURN:
			return
		}
		p.advance()
	}
}
