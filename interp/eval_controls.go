/*
File    : noa/interp/eval_controls.go

Function declaration and user-function call mechanics. No post-return
scope-copy patch is needed for closures returning functions, since
Environment is always a shared pointer (see env.Environment's doc
comment).
*/
package interp

import (
	"github.com/noa-lang/noa/ast"
	"github.com/noa-lang/noa/env"
	"github.com/noa-lang/noa/function"
	"github.com/noa-lang/noa/signal"
	"github.com/noa-lang/noa/value"
)

// execFunctionDecl builds the Function value and binds it into environment
// using environment itself (not a snapshot) as the captured closure scope.
// That is what makes `fun f() { return f(); }` resolve `f` during its own
// body: the declaration's own Define call and the body's later lookup of
// `f` both walk the very same *env.Environment.
func (it *Interpreter) execFunctionDecl(n *ast.FunctionStmt, environment *env.Environment) error {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Lexeme
	}
	fn := &function.Function{
		Name:   n.Name.Lexeme,
		Params: params,
		Body:   n.Body,
		Env:    environment,
	}
	environment.Define(n.Name.Lexeme, fn)
	return nil
}

// callUserFunction executes fn's body in callEnv (already parented on fn's
// captured environment and pre-populated with bound arguments, see
// evalCall) and unwraps the Return signal into an ordinary value — the
// single place in the interpreter where a Return stops propagating.
func (it *Interpreter) callUserFunction(fn *function.Function, callEnv *env.Environment) (value.Value, error) {
	err := it.execBlock(fn.Body, callEnv)
	if err == nil {
		return value.NilValue, nil
	}
	if sig, ok := err.(*signal.Signal); ok && sig.Kind == signal.KindReturn {
		return sig.Value.(value.Value), nil
	}
	// *signal.Error, or a KindExit signal: both propagate unchanged past the
	// call boundary — Exit unwinds all the way to Execute, an Error to
	// whatever recovers it first.
	return nil, err
}
