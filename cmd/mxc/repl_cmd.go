/*
File    : mxc/cmd/mxc/repl_cmd.go
Package : main

`mxc repl` — an interactive line-at-a-time translator REPL, grounded on
repl/repl.go: same readline-driven loop, banner, and colored feedback,
redirected from "evaluate and print the result" to "translate and print
the emitted text" (SPEC_FULL.md §6).
*/
package main

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/urfave/cli/v2"
)

const (
	replBanner = `
  ____ ___  _  _  ____
 |  _ \/ ^ \| ||\/ | |___)
 | | | | | | |  |  | |
 |_| |_|_| |_| _|  |_|____/   translator REPL
`
	replLine   = "----------------------------------------------------------------"
	replPrompt = "mxc >>> "
)

var replCommand = &cli.Command{
	Name:  "repl",
	Usage: "start an interactive line-at-a-time translation REPL",
	Action: func(c *cli.Context) error {
		runRepl(nil, newStdoutWriter())
		return nil
	},
}

// runRepl drives one REPL session. writer receives translated output and
// diagnostics; reader is accepted for parity with repl.Repl.Start's
// signature even though chzyer/readline reads directly from the terminal.
func runRepl(_ io.Reader, writer io.Writer) {
	printBanner(writer)

	rl, err := readline.New(replPrompt)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		translateLine(writer, line)
	}
}

// translateLine runs one REPL line through the full pipeline, mirroring
// repl.go's executeWithRecovery but printing emitted target text instead
// of an evaluated result.
func translateLine(writer io.Writer, line string) {
	out, err := translateSource(line, false)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}
	yellowColor.Fprintf(writer, "%s\n", out)
}

func printBanner(writer io.Writer) {
	cyanColor.Fprintf(writer, "%s\n", replLine)
	cyanColor.Fprintf(writer, "%s\n", replBanner)
	cyanColor.Fprintf(writer, "%s\n", replLine)
	cyanColor.Fprintf(writer, "mxc %s — type mxc source, press enter; '.exit' to quit\n", version)
	cyanColor.Fprintf(writer, "%s\n", replLine)
}
