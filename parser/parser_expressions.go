/*
File    : noa/parser/parser_expressions.go

Expression grammar, precedence low to high:

	expression  -> assignment
	assignment  -> (variable|keyAccess) "=" assignment | or
	or          -> and ( "or" and )*
	and         -> ternary ( "and" ternary )*
	ternary     -> equality ( "?" equality ":" equality )?
	equality    -> comparison ( ("!="|"==") comparison )*
	comparison  -> term ( ("<"|"<="|">"|">=") term )*
	term        -> factor ( ("-"|"+") factor )*
	factor      -> unary ( ("*"|"/") unary )*
	unary       -> ("!"|"-") unary | keyAccess
	keyAccess   -> call ( "[" expression "]" )?
	call        -> primary ( "(" args? ")" )*
	primary     -> literal | identifier | "(" commaExpr ")" | tableLiteral

term/factor fold LEFT, so `1-2-3 = (1-2)-3 = -4` and `8/4/2 = 1` the way
anyone reading `-` and `/` as ordinary arithmetic expects. Note the and/
ternary nesting: each operand of `and` is a full ternary, so
`a and b ? c : d` parses as `a and (b ? c : d)`.
*/
package parser

import (
	"github.com/noa-lang/noa/ast"
	"github.com/noa-lang/noa/signal"
	"github.com/noa-lang/noa/token"
)

func (p *Parser) expression() (ast.Expr, *signal.Error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, *signal.Error) {
	left, err := p.or()
	if err != nil {
		return nil, err
	}
	if !p.match(token.EQUAL) {
		return left, nil
	}
	equals := p.previous()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	switch target := left.(type) {
	case *ast.Variable:
		return &ast.Assign{Name: target.Name, Value: value}, nil
	case *ast.KeyAccess:
		return &ast.KeyAccessAssign{Target: target.Target, Bracket: target.Bracket, Key: target.Key, Value: value}, nil
	default:
		return nil, p.errorAt(equals, "Invalid assignment target")
	}
}

func (p *Parser) or() (ast.Expr, *signal.Error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(token.OR) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = &ast.Logical{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) and() (ast.Expr, *signal.Error) {
	left, err := p.ternary()
	if err != nil {
		return nil, err
	}
	for p.match(token.AND) {
		op := p.previous()
		right, err := p.ternary()
		if err != nil {
			return nil, err
		}
		left = &ast.Logical{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) ternary() (ast.Expr, *signal.Error) {
	cond, err := p.equality()
	if err != nil {
		return nil, err
	}
	if !p.match(token.QUESTION) {
		return cond, nil
	}
	then, err := p.equality()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON, "Expect ':' after ternary then-branch."); err != nil {
		return nil, err
	}
	elseExpr, err := p.equality()
	if err != nil {
		return nil, err
	}
	return &ast.Ternary{Cond: cond, Then: then, Else: elseExpr}, nil
}

func (p *Parser) equality() (ast.Expr, *signal.Error) {
	return p.leftAssocBinary(p.comparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

func (p *Parser) comparison() (ast.Expr, *signal.Error) {
	return p.leftAssocBinary(p.term, token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL)
}

func (p *Parser) term() (ast.Expr, *signal.Error) {
	return p.leftAssocBinary(p.factor, token.MINUS, token.PLUS)
}

func (p *Parser) factor() (ast.Expr, *signal.Error) {
	return p.leftAssocBinary(p.unary, token.STAR, token.SLASH)
}

// leftAssocBinary factors out the repeated "next-level (op next-level)*"
// shape shared by equality/comparison/term/factor.
func (p *Parser) leftAssocBinary(operand func() (ast.Expr, *signal.Error), ops ...token.Type) (ast.Expr, *signal.Error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) unary() (ast.Expr, *signal.Error) {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Right: right}, nil
	}
	return p.keyAccess()
}

func (p *Parser) keyAccess() (ast.Expr, *signal.Error) {
	expr, err := p.call()
	if err != nil {
		return nil, err
	}
	if !p.match(token.LEFT_BRACKET) {
		return expr, nil
	}
	bracket := p.previous()
	key, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_BRACKET, "Expect ']' after key."); err != nil {
		return nil, err
	}
	return &ast.KeyAccess{Target: expr, Bracket: bracket, Key: key}, nil
}

func (p *Parser) call() (ast.Expr, *signal.Error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(token.LEFT_PAREN) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, *signal.Error) {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				return nil, p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Args: args}, nil
}
