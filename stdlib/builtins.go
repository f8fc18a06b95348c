/*
File    : noa/stdlib/builtins.go

Package stdlib implements NOA's built-ins: print, println, input, str,
str_to_num, len, exit. A package-level slice of registration records is
populated by init(), each wrapping a Go function under a (name, factory)
pair; the factory closes the returned function.Native over an
io.Writer/*bufio.Reader pair at registration time.
*/
package stdlib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/noa-lang/noa/env"
	"github.com/noa-lang/noa/function"
	"github.com/noa-lang/noa/signal"
	"github.com/noa-lang/noa/value"
)

// builtin pairs a name with a factory that builds its Native callback once
// the host's writer/reader are known.
type builtin struct {
	name    string
	factory func(w io.Writer, r *bufio.Reader) function.Native
}

// registry lists every built-in NOA ships, one entry per built-in.
var registry []builtin

func init() {
	registry = append(registry,
		builtin{"print", printNative},
		builtin{"println", printlnNative},
		builtin{"input", inputNative},
		builtin{"str", strNative},
		builtin{"str_to_num", strToNumNative},
		builtin{"len", lenNative},
		builtin{"exit", exitNative},
	)
}

// Register binds every built-in into global, wiring output to w and input
// to r. Run does this once per program run; the REPL and tests re-register
// to redirect w/r independently.
func Register(global *env.Environment, w io.Writer, r *bufio.Reader) {
	for _, b := range registry {
		global.Define(b.name, &function.Function{Name: b.name, Native: b.factory(w, r)})
	}
}

func printNative(w io.Writer, _ *bufio.Reader) function.Native {
	return func(args []value.Value) (value.Value, error) {
		for _, a := range args {
			fmt.Fprint(w, a.String())
		}
		if flusher, ok := w.(interface{ Flush() error }); ok {
			flusher.Flush()
		}
		return value.NilValue, nil
	}
}

func printlnNative(w io.Writer, _ *bufio.Reader) function.Native {
	return func(args []value.Value) (value.Value, error) {
		for _, a := range args {
			fmt.Fprint(w, a.String())
		}
		fmt.Fprintln(w)
		if flusher, ok := w.(interface{ Flush() error }); ok {
			flusher.Flush()
		}
		return value.NilValue, nil
	}
}

// inputNative reads one line from r, trims the trailing newline, and
// returns it as a String. A read failure yields Nil, not a runtime
// error.
func inputNative(_ io.Writer, r *bufio.Reader) function.Native {
	return func(args []value.Value) (value.Value, error) {
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return value.NilValue, nil
		}
		line = strings.TrimRight(line, "\n")
		line = strings.TrimRight(line, "\r")
		return value.String{Val: line}, nil
	}
}

func strNative(_ io.Writer, _ *bufio.Reader) function.Native {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, signal.New(0, "str", "str expects 1 argument")
		}
		return value.String{Val: args[0].String()}, nil
	}
}

// strToNumNative parses a String argument as a float64, returning Nil if
// it does not parse. A non-String argument is a runtime error.
func strToNumNative(_ io.Writer, _ *bufio.Reader) function.Native {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, signal.New(0, "str_to_num", "str_to_num expects 1 argument")
		}
		s, ok := args[0].(value.String)
		if !ok {
			return nil, signal.New(0, "str_to_num", "str_to_num expects a String, got %s", args[0].Kind())
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(s.Val), 64)
		if err != nil {
			return value.NilValue, nil
		}
		return value.Number{Val: n}, nil
	}
}

// lenNative reports the length of a String or Table; any other kind is a
// runtime error.
func lenNative(_ io.Writer, _ *bufio.Reader) function.Native {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, signal.New(0, "len", "len expects 1 argument")
		}
		switch v := args[0].(type) {
		case value.String:
			return value.Number{Val: float64(len(v.Val))}, nil
		case *value.Table:
			return value.Number{Val: float64(len(v.Entries))}, nil
		default:
			return nil, signal.New(0, "len", "len can only be called on strings and tables")
		}
	}
}

// exitNative unwinds the whole program with the given Number as its exit
// code. A non-Number argument is a runtime error.
func exitNative(_ io.Writer, _ *bufio.Reader) function.Native {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, signal.New(0, "exit", "exit expects 1 argument")
		}
		n, ok := args[0].(value.Number)
		if !ok {
			return nil, signal.New(0, args[0].Inspect(), "%s is not a number", args[0].Inspect())
		}
		return nil, signal.Exit(n.Val)
	}
}
