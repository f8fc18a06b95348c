/*
File    : noa/parser/parser_literals.go

primary -> literal | identifier | "(" commaExpr ")" | tableLiteral

The comma operator is only reachable here, inside a parenthesized group:
`(a, b, c)` parses as a single ast.Comma whose value at runtime is
the rightmost operand, each evaluated left to right.
*/
package parser

import (
	"github.com/noa-lang/noa/ast"
	"github.com/noa-lang/noa/signal"
	"github.com/noa-lang/noa/token"
)

func (p *Parser) primary() (ast.Expr, *signal.Error) {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Token: p.previous(), Value: false}, nil
	case p.match(token.TRUE):
		return &ast.Literal{Token: p.previous(), Value: true}, nil
	case p.match(token.NIL):
		return &ast.Literal{Token: p.previous(), Value: nil}, nil
	case p.match(token.NUMBER, token.STRING):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal}, nil
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(token.LEFT_BRACE):
		return p.tableLiteral()
	case p.match(token.LEFT_PAREN):
		return p.groupOrComma()
	case p.match(token.CLASS, token.SUPER, token.THIS):
		return nil, p.errorAt(p.previous(), "'"+string(p.previous().Type)+"' is reserved and not supported.")
	}
	return nil, p.errorAt(p.peek(), "Expect expression.")
}

// groupOrComma parses the body of a parenthesized group after the opening
// '(' has already been consumed: a single expression becomes a Group, two
// or more comma-separated expressions become a Comma.
func (p *Parser) groupOrComma() (ast.Expr, *signal.Error) {
	first, err := p.expression()
	if err != nil {
		return nil, err
	}
	exprs := []ast.Expr{first}
	for p.match(token.COMMA) {
		next, err := p.expression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, next)
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
		return nil, err
	}
	if len(exprs) == 1 {
		return &ast.Group{Expr: exprs[0]}, nil
	}
	return &ast.Comma{Exprs: exprs}, nil
}

// tableLiteral parses `{ "key": value, ... , }` after the opening '{' has
// already been consumed. A trailing comma is required after every entry,
// including the last; an empty table is just `{}`
// with no entries and therefore no trailing comma to require.
func (p *Parser) tableLiteral() (ast.Expr, *signal.Error) {
	brace := p.previous()
	var entries []ast.TableEntry
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		keyTok, err := p.consume(token.STRING, "Expect string key in table literal.")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.COLON, "Expect ':' after table key."); err != nil {
			return nil, err
		}
		val, err := p.expression()
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.TableEntry{Key: keyTok.Literal.(string), Value: val})
		if _, err := p.consume(token.COMMA, "Expect ',' after table entry."); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RIGHT_BRACE, "Expect '}' after table literal."); err != nil {
		return nil, err
	}
	return &ast.TableLiteral{Brace: brace, Entries: entries}, nil
}
