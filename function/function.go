/*
File    : noa/function/function.go

Package function defines NOA's Function value: an ordered parameter
list, a body that is either a parsed ast.BlockStmt or a native Go callback
supplied by the standard library, and the Environment captured at
declaration time for closures.
*/
package function

import (
	"fmt"
	"strings"

	"github.com/noa-lang/noa/ast"
	"github.com/noa-lang/noa/env"
	"github.com/noa-lang/noa/value"
)

// Native is the signature of a built-in function body: given the already
// evaluated argument values, return a result or an error. The error slot
// carries the same termination channel the interpreter uses (a runtime
// *signal.Error, or a *signal.Signal such as exit's), typed as plain error
// here so this package does not import signal.
type Native func(args []value.Value) (value.Value, error)

// Function is NOA's callable value: either a user-defined function
// declared with `fun name(params) { body }`, or a native built-in
// registered by the host library.
type Function struct {
	Name   string
	Params []string
	Body   *ast.BlockStmt // nil for a native function
	Env    *env.Environment
	Native Native // non-nil for a native function; Body is ignored then
}

func (f *Function) Kind() value.Kind { return value.FunctionKind }

// String is NOA's display form for a function value: "[Function]"
// regardless of name or arity.
func (f *Function) String() string { return "[Function]" }

// Inspect gives a more useful debug form naming the function and its
// parameters.
func (f *Function) Inspect() string {
	return fmt.Sprintf("<fun %s(%s)>", f.Name, strings.Join(f.Params, ", "))
}
