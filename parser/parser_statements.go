/*
File    : noa/parser/parser_statements.go

declaration -> varDecl | funDecl | statement
statement   -> exprStmt | ifStmt | whileStmt | forStmt | returnStmt | block
*/
package parser

import (
	"github.com/noa-lang/noa/ast"
	"github.com/noa-lang/noa/signal"
	"github.com/noa-lang/noa/token"
)

func (p *Parser) declaration() (ast.Stmt, *signal.Error) {
	switch {
	case p.match(token.VAR):
		return p.varDeclaration()
	case p.match(token.FUN):
		return p.functionDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) varDeclaration() (ast.Stmt, *signal.Error) {
	name, err := p.consume(token.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.match(token.EQUAL) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Init: init}, nil
}

func (p *Parser) statement() (ast.Stmt, *signal.Error) {
	switch {
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.LEFT_BRACE):
		return p.block()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) expressionStatement() (ast.Stmt, *signal.Error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expr: expr}, nil
}

func (p *Parser) block() (*ast.BlockStmt, *signal.Error) {
	var statements []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(token.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return &ast.BlockStmt{Statements: statements}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, *signal.Error) {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		var err *signal.Error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}
