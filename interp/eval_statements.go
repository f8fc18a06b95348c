/*
File    : noa/interp/eval_statements.go

execStmt is the statement half of the dispatcher, returning a plain `error`
that is nil on ordinary completion, a *signal.Error on a runtime error, or a
*signal.Signal (Return/Exit; Break/Continue are never produced — see
signal.Kind's doc comment) that the caller must propagate, not swallow.
*/
package interp

import (
	"github.com/noa-lang/noa/ast"
	"github.com/noa-lang/noa/env"
	"github.com/noa-lang/noa/signal"
	"github.com/noa-lang/noa/value"
)

func (it *Interpreter) execStmt(stmt ast.Stmt, environment *env.Environment) error {
	switch n := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := it.Eval(n.Expr, environment)
		return err
	case *ast.VarStmt:
		return it.execVar(n, environment)
	case *ast.BlockStmt:
		return it.execBlock(n, env.New(environment))
	case *ast.IfStmt:
		return it.execIf(n, environment)
	case *ast.WhileStmt:
		return it.execWhile(n, environment)
	case *ast.FunctionStmt:
		return it.execFunctionDecl(n, environment)
	case *ast.ReturnStmt:
		return it.execReturn(n, environment)
	default:
		return signal.New(0, "", "unhandled statement node %T", stmt)
	}
}

func (it *Interpreter) execVar(n *ast.VarStmt, environment *env.Environment) error {
	var v value.Value = value.NilValue
	if n.Init != nil {
		var err error
		v, err = it.Eval(n.Init, environment)
		if err != nil {
			return err
		}
	}
	environment.Define(n.Name.Lexeme, v)
	return nil
}

// execBlock runs each statement of block against environment in order,
// stopping at the first non-nil result (error or Return/Exit signal).
func (it *Interpreter) execBlock(block *ast.BlockStmt, environment *env.Environment) error {
	for _, stmt := range block.Statements {
		if err := it.execStmt(stmt, environment); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execIf(n *ast.IfStmt, environment *env.Environment) error {
	cond, err := it.Eval(n.Cond, environment)
	if err != nil {
		return err
	}
	if value.Truthy(cond) {
		return it.execStmt(n.Then, environment)
	}
	if n.Else != nil {
		return it.execStmt(n.Else, environment)
	}
	return nil
}

func (it *Interpreter) execWhile(n *ast.WhileStmt, environment *env.Environment) error {
	for {
		cond, err := it.Eval(n.Cond, environment)
		if err != nil {
			return err
		}
		if !value.Truthy(cond) {
			return nil
		}
		if err := it.execStmt(n.Body, environment); err != nil {
			return err
		}
	}
}

func (it *Interpreter) execReturn(n *ast.ReturnStmt, environment *env.Environment) error {
	var v value.Value = value.NilValue
	if n.Value != nil {
		var err error
		v, err = it.Eval(n.Value, environment)
		if err != nil {
			return err
		}
	}
	return signal.Return(v)
}
