/*
File    : noa/cmd/noa/main.go

Package main is NOA's command-line entry point: read a script path or
fall back to the REPL, run it, report any error to stderr, and exit with
the program's own exit code. Two modes only: run a file, or start the
REPL; no subcommands, no flags.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/noa-lang/noa/noa"
	"github.com/noa-lang/noa/repl"
)

var redColor = color.New(color.FgRed)

func main() {
	if len(os.Args) > 1 {
		os.Exit(runFile(os.Args[1]))
	}
	os.Exit(repl.New().Start(os.Stdout))
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "noa: could not read %q: %v\n", path, err)
		return 1
	}

	code, rerr := noa.Run(string(source))
	if rerr != nil {
		redColor.Fprintln(os.Stderr, rerr.Error())
		return 1
	}
	return int(code)
}
