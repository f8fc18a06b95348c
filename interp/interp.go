/*
File    : noa/interp/interp.go

Package interp implements the tree-walking evaluator: it walks the ast
produced by package parser against an env.Environment chain and produces
value.Value results, threading control flow through Go's ordinary
(value, error) idiom rather than sentinel wrapper values — see
signal.Signal's doc comment for why.
*/
package interp

import (
	"bufio"
	"io"
	"os"

	"github.com/noa-lang/noa/ast"
	"github.com/noa-lang/noa/env"
	"github.com/noa-lang/noa/signal"
	"github.com/noa-lang/noa/value"
)

// Interpreter holds the state shared across one program run: the global
// environment and the I/O streams builtins read from and write to.
type Interpreter struct {
	Global *env.Environment
	Writer io.Writer
	Reader *bufio.Reader
}

// New creates an Interpreter with a fresh global environment, wired to
// process stdout/stdin by default (replaceable with SetWriter/SetReader).
func New() *Interpreter {
	return &Interpreter{
		Global: env.New(nil),
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
	}
}

// SetWriter replaces the Writer field. Builtins already registered keep the
// writer they were registered with until stdlib.Register runs again (as
// noa.Runner.SetWriter does).
func (it *Interpreter) SetWriter(w io.Writer) { it.Writer = w }

// SetReader replaces the Reader field with a buffered reader over r; as
// with SetWriter, registered builtins see it only after stdlib.Register
// runs again.
func (it *Interpreter) SetReader(r io.Reader) { it.Reader = bufio.NewReader(r) }

// Execute runs statements in order against the global environment and
// returns the process exit code. A program that never calls exit()
// finishes with code 0. A loose top-level return/break/continue (break and
// continue cannot come from the grammar today, but the termination channel
// carries them) is reported as an error rather than silently accepted.
func (it *Interpreter) Execute(statements []ast.Stmt) (float64, *signal.Error) {
	for _, stmt := range statements {
		err := it.execStmt(stmt, it.Global)
		if err == nil {
			continue
		}
		if sig, ok := err.(*signal.Signal); ok {
			switch sig.Kind {
			case signal.KindExit:
				return sig.Value.(float64), nil
			case signal.KindReturn:
				return 0, signal.New(0, "return", "return can only be used inside a function")
			case signal.KindBreak:
				return 0, signal.New(0, "break", "break can only be used inside a loop")
			case signal.KindContinue:
				return 0, signal.New(0, "continue", "continue can only be used inside a loop")
			}
		}
		if sigErr, ok := err.(*signal.Error); ok {
			return 0, sigErr
		}
		return 0, signal.New(0, "", "%s", err.Error())
	}
	return 0, nil
}

// ExecTop runs a single statement against the global environment and
// returns whatever execStmt returns, unwrapped to a plain error — exported
// so package noa can drive statement-at-a-time REPL evaluation without
// reaching into the interpreter's internals.
func (it *Interpreter) ExecTop(stmt ast.Stmt) error {
	return it.execStmt(stmt, it.Global)
}

// literalToValue converts a parsed literal payload (float64/string/bool/nil)
// into its runtime value.Value.
func literalToValue(v interface{}) value.Value {
	switch t := v.(type) {
	case float64:
		return value.Number{Val: t}
	case string:
		return value.String{Val: t}
	case bool:
		return value.Bool{Val: t}
	default:
		return value.NilValue
	}
}
