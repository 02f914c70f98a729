/*
File    : mxc/cmd/mxc/main.go
Package : main

Entry point for the mxc source-to-source compiler CLI. The primary
contract is spec.md §6 verbatim: `mxc <path>` emits target-language text to
stdout (exit 0), exit 1 on argument misuse, exit 2 on a fatal pipeline
error. `urfave/cli/v2` replaces the teacher's hand-rolled os.Args switch
(main/main.go), the idiomatic form already present in the pack
(gaarutyunov-guix/go.mod).
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

const version = "v0.1.0"

func main() {
	app := &cli.App{
		Name:                 "mxc",
		Usage:                "translate mxc source into target-language source text",
		Version:              version,
		Action:               translateDefault,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "dump-ast", Usage: "print a go-spew dump of the parsed program to stderr"},
		},
		Commands: []*cli.Command{
			translateCommand,
			replCommand,
			serveCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		if _, ok := err.(usageError); ok {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] %v\n", err)
			os.Exit(1)
		}
		redColor.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(2)
	}
}

// usageError marks argument-misuse failures, which exit with code 1 per
// spec.md §6, distinct from pipeline errors, which exit with code 2.
type usageError string

func (e usageError) Error() string { return string(e) }

// translateDefault implements the bare `mxc <path>` primary contract when
// no subcommand is given.
func translateDefault(c *cli.Context) error {
	if c.Args().Len() == 0 {
		_ = cli.ShowAppHelp(c)
		return usageError("expected a source file path")
	}
	return runTranslate(c.Args().First(), "", c.Bool("dump-ast"))
}

var translateCommand = &cli.Command{
	Name:      "translate",
	Usage:     "translate a source file, the explicit form of the primary contract",
	ArgsUsage: "<path>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "out", Usage: "write emitted text to FILE instead of stdout"},
		&cli.BoolFlag{Name: "dump-ast", Usage: "print a go-spew dump of the parsed program to stderr"},
	},
	Action: func(c *cli.Context) error {
		if c.Args().Len() == 0 {
			return usageError("translate requires a source file path")
		}
		return runTranslate(c.Args().First(), c.String("out"), c.Bool("dump-ast"))
	},
}

func runTranslate(path, out string, dumpAST bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return usageError(fmt.Sprintf("cannot read %q: %v", path, err))
	}

	emitted, err := translateSource(string(source), dumpAST)
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Print(emitted)
		return nil
	}
	return os.WriteFile(out, []byte(emitted), 0o644)
}
