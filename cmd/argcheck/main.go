// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argcheck loads a CLI definition file and either runs one
// invocation against it or checks a file of expected parse outcomes.
//
//	argcheck --def cli.toml -- build -o dist main.go
//	argcheck --def cli.yaml --cases cases.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/shayne/yargs"
	"github.com/yeetrun/argkit/pkg/cli"
	"github.com/yeetrun/argkit/pkg/deffile"
)

const defaultVersion = "0.0.0"

type flagsParsed struct {
	Def     string `flag:"def" help:"Definition file (.toml, .yaml, .yml or .json)"`
	Cases   string `flag:"cases" help:"File of parse cases to check against the definition"`
	Color   string `flag:"color" help:"Color output (auto|always|never)"`
	Verbose bool   `flag:"verbose" help:"Log progress to stderr"`
	Jobs    int    `flag:"jobs" help:"Cases checked at once (default GOMAXPROCS)"`
}

var errNoDef = errors.New("missing --def")

func main() {
	log.SetFlags(0)
	log.SetPrefix("argcheck: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code, err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		log.Fatalf("%v", err)
	}
	os.Exit(code)
}

func parseFlags(args []string) (flagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[flagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return flagsParsed{}, nil, err
	}
	rest := result.RemainingArgs
	if len(rest) > 0 && rest[0] == "--" {
		rest = rest[1:]
	}
	return result.Flags, rest, nil
}

// run returns the exit code for a completed check, or an error when the
// inputs could not be loaded at all.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) (int, error) {
	flags, argv, err := parseFlags(args)
	if err != nil {
		return 0, err
	}
	if flags.Def == "" {
		return 0, errNoDef
	}
	mode, err := cli.ParseColorMode(flags.Color)
	if err != nil {
		return 0, err
	}
	logf := func(format string, args ...any) {
		if flags.Verbose {
			log.Printf(format, args...)
		}
	}

	prog, err := deffile.Load(flags.Def)
	if err != nil {
		return 0, err
	}
	logf("loaded %s: %d commands", flags.Def, len(prog.Commands))

	if flags.Cases != "" {
		cases, err := deffile.LoadCases(flags.Cases)
		if err != nil {
			return 0, err
		}
		logf("checking %d cases from %s", len(cases), flags.Cases)
		results, err := checkCases(ctx, prog, cases, flags.Jobs)
		if err != nil {
			return 0, err
		}
		return report(stdout, cli.NewColorizer(mode, stdout), results), nil
	}

	c, err := newCLI(prog, cli.Config{
		Stdout: stdout,
		Stderr: stderr,
		Color:  mode,
	})
	if err != nil {
		return 0, err
	}
	logf("running %q", argv)
	return c.Run(ctx, argv), nil
}

func report(w io.Writer, col cli.Colorizer, results []caseResult) int {
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(w, "%s %s: %v\n", col.Error("FAIL"), r.name, r.err)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", col.Success("PASS"), r.name)
	}
	fmt.Fprintln(w, col.Dim(fmt.Sprintf("%d passed, %d failed", len(results)-failed, failed)))
	if failed > 0 {
		return cli.ExitFailure
	}
	return cli.ExitSuccess
}
