/*
File    : noa/repl/repl.go

Package repl implements NOA's interactive Read-Eval-Print Loop: a
readline-backed prompt loop holding one long-lived interpreter across the
whole session, coloring errors red and results yellow. Evaluates
statement-by-statement via noa.Runner.EvalLine, and stops the loop
outright on an exit() call instead of just printing a result.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/noa-lang/noa/noa"
	"github.com/noa-lang/noa/signal"
	"github.com/noa-lang/noa/value"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
	blueColor   = color.New(color.FgBlue)
)

const banner = `
 _   _  ___   _
| \ | |/ _ \ / \
|  \| | | | / _ \
| |\  | |_| / ___ \
|_| \_|\___/_/   \_\
`

const line = "----------------------------------------------------------------"

// Repl is a configured interactive session.
type Repl struct {
	Prompt string
}

// New builds a Repl with the default prompt.
func New() *Repl {
	return &Repl{Prompt: "noa >>> "}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Welcome to NOA. Type an expression or statement and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' or press Ctrl+D to quit.")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the REPL loop against writer until the user quits, EOF is
// reached, or the program calls exit(); readline itself owns stdin. The
// return value is the process exit code.
func (r *Repl) Start(writer io.Writer) int {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		fmt.Fprintln(writer, err)
		return 1
	}
	defer rl.Close()

	runner := noa.NewRunner()
	runner.SetWriter(writer)

	for {
		input, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "bye")
			return 0
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ".exit" {
			fmt.Fprintln(writer, "bye")
			return 0
		}
		rl.SaveHistory(input)

		if !strings.HasSuffix(input, ";") && !strings.HasSuffix(input, "}") {
			input += ";"
		}

		v, err := runner.EvalLine(input)
		if err != nil {
			if sig, ok := err.(*signal.Signal); ok && sig.Kind == signal.KindExit {
				return int(sig.Value.(float64))
			}
			redColor.Fprintln(writer, err.Error())
			continue
		}
		if v != nil && v != value.NilValue {
			yellowColor.Fprintln(writer, v.Inspect())
		}
	}
}
