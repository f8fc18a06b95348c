/*
File    : noa/parser/parser_functions.go

funDecl -> "fun" IDENT "(" params? ")" "{" block "}"
params  -> IDENT ( "," IDENT )*
*/
package parser

import (
	"github.com/noa-lang/noa/ast"
	"github.com/noa-lang/noa/signal"
	"github.com/noa-lang/noa/token"
)

func (p *Parser) functionDeclaration() (ast.Stmt, *signal.Error) {
	name, err := p.consume(token.IDENTIFIER, "Expect function name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after function name."); err != nil {
		return nil, err
	}
	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				return nil, p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			param, err := p.consume(token.IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFT_BRACE, "Expect '{' before function body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}, nil
}
