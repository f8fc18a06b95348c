/*
File    : noa/interp/eval_expressions.go

Eval is the expression half of the type-switch dispatcher, with one case
per ast node type.
*/
package interp

import (
	"github.com/noa-lang/noa/ast"
	"github.com/noa-lang/noa/env"
	"github.com/noa-lang/noa/function"
	"github.com/noa-lang/noa/signal"
	"github.com/noa-lang/noa/token"
	"github.com/noa-lang/noa/value"
)

// Eval evaluates expr in environment, returning either the resulting
// value.Value or an error — a *signal.Error for a genuine runtime error, or
// a *signal.Signal (only KindExit can escape an expression; a Call is the
// sole place a Return produced deeper in a function body gets unwrapped)
// for ordinary non-local control flow.
func (it *Interpreter) Eval(expr ast.Expr, environment *env.Environment) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return literalToValue(n.Value), nil
	case *ast.Variable:
		v, ok := environment.Lookup(n.Name.Lexeme)
		if !ok {
			return nil, it.errorAt(n.Name, "Undefined variable '%s'.", n.Name.Lexeme)
		}
		return v, nil
	case *ast.Group:
		return it.Eval(n.Expr, environment)
	case *ast.Comma:
		return it.evalComma(n, environment)
	case *ast.Unary:
		return it.evalUnary(n, environment)
	case *ast.Binary:
		return it.evalBinary(n, environment)
	case *ast.Logical:
		return it.evalLogical(n, environment)
	case *ast.Ternary:
		return it.evalTernary(n, environment)
	case *ast.Assign:
		return it.evalAssign(n, environment)
	case *ast.Call:
		return it.evalCall(n, environment)
	case *ast.KeyAccess:
		return it.evalKeyAccess(n, environment)
	case *ast.KeyAccessAssign:
		return it.evalKeyAccessAssign(n, environment)
	case *ast.TableLiteral:
		return it.evalTableLiteral(n, environment)
	default:
		return nil, signal.New(0, "", "unhandled expression node %T", expr)
	}
}

func (it *Interpreter) evalComma(n *ast.Comma, environment *env.Environment) (value.Value, error) {
	var result value.Value = value.NilValue
	for _, e := range n.Exprs {
		v, err := it.Eval(e, environment)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (it *Interpreter) evalUnary(n *ast.Unary, environment *env.Environment) (value.Value, error) {
	right, err := it.Eval(n.Right, environment)
	if err != nil {
		return nil, err
	}
	switch n.Op.Type {
	case token.BANG:
		return value.Bool{Val: !value.Truthy(right)}, nil
	case token.MINUS:
		num, ok := right.(value.Number)
		if !ok {
			return nil, it.errorAt(n.Op, "Operand of '-' must be a Number, got %s.", right.Kind())
		}
		return value.Number{Val: -num.Val}, nil
	default:
		return nil, it.errorAt(n.Op, "Unknown unary operator '%s'.", n.Op.Lexeme)
	}
}

func (it *Interpreter) evalLogical(n *ast.Logical, environment *env.Environment) (value.Value, error) {
	left, err := it.Eval(n.Left, environment)
	if err != nil {
		return nil, err
	}
	if n.Op.Type == token.OR {
		if value.Truthy(left) {
			return left, nil
		}
		return it.Eval(n.Right, environment)
	}
	// AND
	if !value.Truthy(left) {
		return left, nil
	}
	return it.Eval(n.Right, environment)
}

func (it *Interpreter) evalTernary(n *ast.Ternary, environment *env.Environment) (value.Value, error) {
	cond, err := it.Eval(n.Cond, environment)
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return it.Eval(n.Then, environment)
	}
	return it.Eval(n.Else, environment)
}

func (it *Interpreter) evalBinary(n *ast.Binary, environment *env.Environment) (value.Value, error) {
	left, err := it.Eval(n.Left, environment)
	if err != nil {
		return nil, err
	}
	right, err := it.Eval(n.Right, environment)
	if err != nil {
		return nil, err
	}

	switch n.Op.Type {
	case token.PLUS:
		if left.Kind() == value.StringKind || right.Kind() == value.StringKind {
			return value.String{Val: left.String() + right.String()}, nil
		}
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, it.errorAt(n.Op, "Operands of '+' must both be Numbers, or one must be a String, got %s and %s.", left.Kind(), right.Kind())
		}
		return value.Number{Val: ln.Val + rn.Val}, nil
	case token.MINUS:
		ln, rn, err := it.numericOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return value.Number{Val: ln - rn}, nil
	case token.STAR:
		ln, rn, err := it.numericOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return value.Number{Val: ln * rn}, nil
	case token.SLASH:
		ln, rn, err := it.numericOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		if rn == 0 {
			return nil, it.errorAt(n.Op, "Division by zero.")
		}
		return value.Number{Val: ln / rn}, nil
	case token.EQUAL_EQUAL:
		return value.Bool{Val: value.Equal(left, right)}, nil
	case token.BANG_EQUAL:
		return value.Bool{Val: !value.Equal(left, right)}, nil
	case token.LESS:
		return value.Bool{Val: value.Less(left, right)}, nil
	case token.LESS_EQUAL:
		return value.Bool{Val: value.Less(left, right) || value.Equal(left, right)}, nil
	case token.GREATER:
		return value.Bool{Val: value.Less(right, left)}, nil
	case token.GREATER_EQUAL:
		return value.Bool{Val: value.Less(right, left) || value.Equal(left, right)}, nil
	default:
		return nil, it.errorAt(n.Op, "Unknown binary operator '%s'.", n.Op.Lexeme)
	}
}

func (it *Interpreter) numericOperands(op token.Token, left, right value.Value) (float64, float64, *signal.Error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return 0, 0, it.errorAt(op, "Operands of '%s' must both be Numbers, got %s and %s.", op.Lexeme, left.Kind(), right.Kind())
	}
	return ln.Val, rn.Val, nil
}

func (it *Interpreter) evalAssign(n *ast.Assign, environment *env.Environment) (value.Value, error) {
	v, err := it.Eval(n.Value, environment)
	if err != nil {
		return nil, err
	}
	if !environment.Assign(n.Name.Lexeme, v) {
		return nil, it.errorAt(n.Name, "Undefined variable '%s'.", n.Name.Lexeme)
	}
	return v, nil
}

func (it *Interpreter) evalKeyAccess(n *ast.KeyAccess, environment *env.Environment) (value.Value, error) {
	target, err := it.Eval(n.Target, environment)
	if err != nil {
		return nil, err
	}
	tbl, ok := target.(*value.Table)
	if !ok {
		return nil, it.errorAt(n.Bracket, "Only a Table can be indexed, got %s.", target.Kind())
	}
	key, err := it.Eval(n.Key, environment)
	if err != nil {
		return nil, err
	}
	str, ok := key.(value.String)
	if !ok {
		return nil, it.errorAt(n.Bracket, "Table key must be a String, got %s.", key.Kind())
	}
	return tbl.Get(str.Val), nil
}

func (it *Interpreter) evalKeyAccessAssign(n *ast.KeyAccessAssign, environment *env.Environment) (value.Value, error) {
	target, err := it.Eval(n.Target, environment)
	if err != nil {
		return nil, err
	}
	tbl, ok := target.(*value.Table)
	if !ok {
		return nil, it.errorAt(n.Bracket, "Only a Table can be indexed, got %s.", target.Kind())
	}
	key, err := it.Eval(n.Key, environment)
	if err != nil {
		return nil, err
	}
	str, ok := key.(value.String)
	if !ok {
		return nil, it.errorAt(n.Bracket, "Table key must be a String, got %s.", key.Kind())
	}
	v, err := it.Eval(n.Value, environment)
	if err != nil {
		return nil, err
	}
	tbl.Set(str.Val, v)
	return v, nil
}

func (it *Interpreter) evalTableLiteral(n *ast.TableLiteral, environment *env.Environment) (value.Value, error) {
	tbl := value.NewTable()
	for _, entry := range n.Entries {
		v, err := it.Eval(entry.Value, environment)
		if err != nil {
			return nil, err
		}
		tbl.Set(entry.Key, v)
	}
	return tbl, nil
}

func (it *Interpreter) evalCall(n *ast.Call, environment *env.Environment) (value.Value, error) {
	callee, err := it.Eval(n.Callee, environment)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*function.Function)
	if !ok {
		return nil, it.errorAt(n.Paren, "Can only call a Function, got %s.", callee.Kind())
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := it.Eval(a, environment)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if fn.Native != nil {
		v, err := fn.Native(args)
		if err != nil {
			return nil, err
		}
		return v, nil
	}

	if len(args) != len(fn.Params) {
		return nil, it.errorAt(n.Paren, "Expected %d arguments but got %d.", len(fn.Params), len(args))
	}

	callEnv := env.New(fn.Env)
	for i, param := range fn.Params {
		callEnv.Define(param, args[i])
	}

	return it.callUserFunction(fn, callEnv)
}

// errorAt builds a *signal.Error anchored to tok's source position.
func (it *Interpreter) errorAt(tok token.Token, format string, args ...interface{}) *signal.Error {
	return signal.New(tok.Line, tok.Lexeme, format, args...)
}
