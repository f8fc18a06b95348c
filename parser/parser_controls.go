/*
File    : noa/parser/parser_controls.go

ifStmt    -> "if" "(" expression ")" statement ( "else" statement )?
whileStmt -> "while" "(" expression ")" statement
forStmt   -> "for" "(" (varDecl|exprStmt|";") expression? ";" expression? ")" statement

forStatement desugars at parse time into a Block wrapping a While, so the
interpreter never needs a separate For node.
*/
package parser

import (
	"github.com/noa-lang/noa/ast"
	"github.com/noa-lang/noa/signal"
	"github.com/noa-lang/noa/token"
)

func (p *Parser) ifStatement() (ast.Stmt, *signal.Error) {
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Cond: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, *signal.Error) {
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after while condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body}, nil
}

// forStatement parses `for ( init ; cond? ; post? ) body` and desugars it
// into `{ init; while (cond) { body; post; } }`. A missing cond
// defaults to the literal `true`.
func (p *Parser) forStatement() (ast.Stmt, *signal.Error) {
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var init ast.Stmt
	var err *signal.Error
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.match(token.VAR):
		init, err = p.varDeclaration()
	default:
		init, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var post ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		post, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if cond == nil {
		cond = &ast.Literal{Value: true}
	}
	if post != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expr: post}}}
	}
	outer := &ast.BlockStmt{}
	if init != nil {
		outer.Statements = append(outer.Statements, init)
	}
	outer.Statements = append(outer.Statements, &ast.WhileStmt{Cond: cond, Body: body})
	return outer, nil
}
