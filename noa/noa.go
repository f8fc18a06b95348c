/*
File    : noa/noa/noa.go

Package noa is the top-level entry point: Run(source) wires
lexer -> parser -> interpreter and the standard library together and
returns the program's numeric exit code or the first error encountered.

Runner exposes the same pipeline with a persistent global environment, for
a REPL that must see variables and functions declared on earlier lines,
keeping one interpreter alive across the whole interactive session instead
of rebuilding it per line.
*/
package noa

import (
	"io"

	"github.com/noa-lang/noa/ast"
	"github.com/noa-lang/noa/interp"
	"github.com/noa-lang/noa/parser"
	"github.com/noa-lang/noa/signal"
	"github.com/noa-lang/noa/stdlib"
	"github.com/noa-lang/noa/value"
)

// Run parses and executes source against a fresh interpreter, returning the
// process exit code (0 if the program never calls exit()) or the first
// lexical, syntax, or runtime error encountered, formatted as
// `[line "L"] Error at 'LEXEME': MESSAGE`.
func Run(source string) (float64, error) {
	r := NewRunner()
	return r.Run(source)
}

// Runner holds one interpreter instance across possibly many calls to Run,
// so a REPL session can build up state line by line.
type Runner struct {
	interp *interp.Interpreter
}

// NewRunner builds a Runner wired to process stdout/stdin by default,
// overridable with SetWriter/SetReader.
func NewRunner() *Runner {
	it := interp.New()
	stdlib.Register(it.Global, it.Writer, it.Reader)
	return &Runner{interp: it}
}

// SetWriter redirects builtin output, re-registering the standard library
// against the new writer (the stdlib closures captured the old one at
// Register time).
func (r *Runner) SetWriter(w io.Writer) {
	r.interp.SetWriter(w)
	stdlib.Register(r.interp.Global, r.interp.Writer, r.interp.Reader)
}

// SetReader redirects builtin input the same way SetWriter redirects
// output.
func (r *Runner) SetReader(in io.Reader) {
	r.interp.SetReader(in)
	stdlib.Register(r.interp.Global, r.interp.Writer, r.interp.Reader)
}

// Run parses and executes source against this Runner's (possibly
// already-populated) global environment and returns the exit code.
func (r *Runner) Run(source string) (float64, error) {
	stmts, err := r.parse(source)
	if err != nil {
		return 0, err
	}
	code, rerr := r.interp.Execute(stmts)
	if rerr != nil {
		return 0, rerr
	}
	return code, nil
}

// EvalLine runs source the way a REPL line should: every statement but a
// trailing bare expression is executed for effect, and a trailing
// expression statement's value is evaluated and returned so the REPL can
// print it. The returned error is either a *signal.Error or a
// *signal.Signal: KindExit, which the REPL must check for explicitly to end
// the session, or KindReturn for a `return` statement on the line itself,
// whose Error() text is the loose-return message.
func (r *Runner) EvalLine(source string) (value.Value, error) {
	stmts, perr := r.parse(source)
	if perr != nil {
		return nil, perr
	}
	for i, stmt := range stmts {
		if i == len(stmts)-1 {
			if es, ok := stmt.(*ast.ExpressionStmt); ok {
				return r.interp.Eval(es.Expr, r.interp.Global)
			}
		}
		if err := r.interp.ExecTop(stmt); err != nil {
			return nil, err
		}
	}
	return value.NilValue, nil
}

func (r *Runner) parse(source string) ([]ast.Stmt, *signal.Error) {
	p, err := parser.New(source)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

