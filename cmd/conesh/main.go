// SPDX-License-Identifier: MIT

// Command conesh evaluates cone commands from a file, a flag or a prompt.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/katalvlaran/polycone/interp"
	"github.com/mattn/go-isatty"
)

const usage = `conesh

Usage:
  conesh [-q] [FILE]
  conesh [-q] -c COMMAND
  conesh -h

Arguments:
  FILE  Script to evaluate line by line. "-" reads stdin.

Options:
  -c, --command=COMMAND  Evaluate COMMAND and exit.
  -q, --quiet            Do not print results, only errors.
  -h, --help             Display this help.

With no FILE and a terminal on stdin, conesh prompts for lines and keeps a
history. A failing line prints "? <error>" and evaluation goes on.
`

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}
	quiet, _ := opts.Bool("--quiet")
	command, _ := opts.String("--command")
	path, _ := opts.String("FILE")

	sh := &shell{in: interp.New(), out: os.Stdout, errs: os.Stderr, quiet: quiet}

	switch {
	case command != "":
		return sh.run(strings.NewReader(command))
	case path != "" && path != "-":
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "conesh: %v\n", err)

			return 2
		}
		defer f.Close()

		return sh.run(f)
	case path == "" && isatty.IsTerminal(os.Stdin.Fd()):
		sh.interactive()

		return 0
	default:
		return sh.run(os.Stdin)
	}
}
