// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/polycone/interp"
	"github.com/peterh/liner"
)

const historyFile = ".conesh_history"

type shell struct {
	in    *interp.Interpreter
	out   io.Writer
	errs  io.Writer
	quiet bool
}

// eval runs one line and reports its result. It returns false on error.
func (sh *shell) eval(line string) bool {
	v, err := sh.in.Eval(line)
	if err != nil {
		fmt.Fprintf(sh.errs, "? %v\n", err)

		return false
	}
	if !sh.quiet && v.Kind() != interp.KindNone {
		fmt.Fprintln(sh.out, v.String())
	}

	return true
}

// run evaluates r line by line. The status is 1 if any line failed.
func (sh *shell) run(r io.Reader) int {
	status := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if !sh.eval(sc.Text()) {
			status = 1
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(sh.errs, "? %v\n", err)

		return 2
	}

	return status
}

// complete offers commands and variables that start with the last word.
func (sh *shell) complete(line string, pos int) (head string, cs []string, tail string) {
	head, tail = line[:pos], line[pos:]
	start := strings.LastIndexFunc(head, func(r rune) bool {
		return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}) + 1
	word := head[start:]
	head = head[:start]
	if word == "" {
		return head, nil, tail
	}
	for _, names := range [][]string{sh.in.Registry().Names(), sh.in.Env().Names()} {
		for _, n := range names {
			if strings.HasPrefix(n, word) {
				cs = append(cs, n)
			}
		}
	}

	return head, cs, tail
}

func historyPath() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}

	return filepath.Join(home, historyFile), true
}

// interactive prompts until end of input.
func (sh *shell) interactive() {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(sh.complete)

	hpath, ok := historyPath()
	if ok {
		if f, err := os.Open(hpath); err == nil {
			_, _ = cli.ReadHistory(f)
			f.Close()
		}
	}

	for {
		line, err := cli.Prompt("> ")
		switch err {
		case nil:
			if strings.TrimSpace(line) != "" {
				cli.AppendHistory(line)
			}
			sh.eval(line)
		case liner.ErrPromptAborted:
			continue
		default:
			fmt.Fprintln(sh.out)
			if ok {
				if f, err := os.Create(hpath); err == nil {
					_, _ = cli.WriteHistory(f)
					f.Close()
				}
			}

			return
		}
	}
}
