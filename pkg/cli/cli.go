// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli dispatches a program's argument vector to registered
// commands. It handles global help and version flags, unknown-command
// suggestions, help rendering and exit codes, and leaves option and
// argument parsing to package argparse.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/argkit/pkg/argparse"
	"github.com/yeetrun/argkit/pkg/suggest"
)

// Exit codes returned by Run.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ErrDuplicateCommand is returned by Register for a name already in use.
var ErrDuplicateCommand = errors.New("command already registered")

// ActionFunc runs a command after its input parsed cleanly.
type ActionFunc func(ctx context.Context, c *Context) error

// Command is a command definition plus the action that runs it.
type Command struct {
	argparse.Command
	Action ActionFunc
}

// Context is handed to a command's action.
type Context struct {
	Command *Command
	Args    argparse.Values
	Options argparse.Values
	// RawArgs are the tokens that followed the command name.
	RawArgs []string
	Stdout  io.Writer
	Stderr  io.Writer
}

// Config describes a program.
type Config struct {
	Name        string
	Version     string // must be a semantic version
	Description string

	// Help and VersionFlag override the short alias and description of
	// the global --help and --version options. Name and type are fixed.
	Help        *argparse.Option
	VersionFlag *argparse.Option

	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr
	Color  ColorMode
}

var (
	defaultHelp = argparse.Option{
		Name:        "help",
		Short:       "h",
		Description: "Show help",
		Type:        argparse.TypeBoolean,
	}
	defaultVersion = argparse.Option{
		Name:        "version",
		Short:       "v",
		Description: "Show version",
		Type:        argparse.TypeBoolean,
	}
)

// CLI is a program made of registered commands.
type CLI struct {
	name          string
	versionString string
	description   string
	help          argparse.Option
	version       argparse.Option

	commands map[string]*Command

	stdout   io.Writer
	stderr   io.Writer
	color    Colorizer
	errColor Colorizer
}

// New returns a CLI with no commands. It fails if the version is not a
// semantic version or the help/version overrides are malformed.
func New(cfg Config) (*CLI, error) {
	if _, err := semver.NewVersion(cfg.Version); err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", cfg.Version, err)
	}

	c := &CLI{
		name:          cfg.Name,
		versionString: cfg.Version,
		description:   cfg.Description,
		help:          resolveGlobalOption(defaultHelp, cfg.Help),
		version:       resolveGlobalOption(defaultVersion, cfg.VersionFlag),
		commands:      make(map[string]*Command),
		stdout:        cfg.Stdout,
		stderr:        cfg.Stderr,
	}
	if c.stdout == nil {
		c.stdout = os.Stdout
	}
	if c.stderr == nil {
		c.stderr = os.Stderr
	}
	if err := argparse.ValidateGlobalOptions(c.help, c.version); err != nil {
		return nil, err
	}
	c.color = NewColorizer(cfg.Color, c.stdout)
	c.errColor = NewColorizer(cfg.Color, c.stderr)
	return c, nil
}

func resolveGlobalOption(def argparse.Option, override *argparse.Option) argparse.Option {
	if override == nil {
		return def
	}
	o := def
	if override.Short != "" {
		o.Short = override.Short
	}
	if override.Description != "" {
		o.Description = override.Description
	}
	return o
}

// Name returns the program name.
func (c *CLI) Name() string { return c.name }

// Version returns the program version.
func (c *CLI) Version() string { return c.versionString }

// Register validates cmd and adds it to c.
func (c *CLI) Register(cmd *Command) error {
	if err := argparse.Validate(&cmd.Command); err != nil {
		return err
	}
	if _, ok := c.commands[cmd.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.Name)
	}
	c.commands[cmd.Name] = cmd
	return nil
}

// MustRegister is like Register but panics on error. Use it where
// commands are declared at startup.
func (c *CLI) MustRegister(cmds ...*Command) *CLI {
	for _, cmd := range cmds {
		if err := c.Register(cmd); err != nil {
			panic(fmt.Sprintf("cli: registering %q: %v", cmd.Name, err))
		}
	}
	return c
}

// Lookup returns the named command.
func (c *CLI) Lookup(name string) (*Command, bool) {
	cmd, ok := c.commands[name]
	return cmd, ok
}

func (c *CLI) sortedCommands() []*Command {
	cmds := make([]*Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		cmds = append(cmds, cmd)
	}
	slices.SortFunc(cmds, func(a, b *Command) int {
		return strings.Compare(a.Name, b.Name)
	})
	return cmds
}

// findCommandIndex returns the index of the command name in argv, or -1.
// The command is the first token not starting with "-"; after a bare
// "--" it is the next token.
func findCommandIndex(argv []string) int {
	for i, tok := range argv {
		if tok == "--" {
			if i+1 < len(argv) {
				return i + 1
			}
			return -1
		}
		if !strings.HasPrefix(tok, "-") {
			return i
		}
	}
	return -1
}

func containsAny(tokens, flags []string) bool {
	return slices.ContainsFunc(tokens, func(tok string) bool {
		return slices.Contains(flags, tok)
	})
}

// Run dispatches argv (without the program name) and returns the exit
// code.
//
// Dispatch rules:
//  1. A help flag anywhere prints the command's help, or global help
//     when no known command was given.
//  2. A version flag before the command prints "<name> <version>".
//  3. No command prints global help.
//  4. An unknown command is reported with a suggestion when one is close.
//  5. Parse errors are all reported, followed by a usage hint.
//  6. Otherwise the command's action runs; an error from it fails the run.
func (c *CLI) Run(ctx context.Context, argv []string) int {
	idx := findCommandIndex(argv)
	var name string
	var cmdArgs []string
	globalArgs := argv
	if idx >= 0 {
		name = argv[idx]
		cmdArgs = argv[idx+1:]
		globalArgs = argv[:idx]
	}

	if containsAny(argv, c.help.Flags()) {
		if cmd, ok := c.commands[name]; ok && idx >= 0 {
			c.println(c.CommandHelp(cmd))
			return ExitSuccess
		}
		c.println(c.GlobalHelp())
		return ExitSuccess
	}

	if containsAny(globalArgs, c.version.Flags()) {
		c.println(c.name + " " + c.versionString)
		return ExitSuccess
	}

	if idx < 0 {
		c.println(c.GlobalHelp())
		return ExitSuccess
	}

	cmd, ok := c.commands[name]
	if !ok {
		c.errorln(c.unknownCommandMessage(name))
		return ExitFailure
	}

	res, err := argparse.Parse(cmdArgs, &cmd.Command)
	if err != nil {
		var perrs argparse.ParseErrors
		if errors.As(err, &perrs) {
			for _, pe := range perrs {
				c.errorln(pe.Message)
			}
		} else {
			c.errorln(err.Error())
		}
		hint := fmt.Sprintf("Run %s %s %s for usage.", c.name, cmd.Name, argparse.LongFlag(c.help.Name))
		fmt.Fprintln(c.stderr, c.errColor.Dim(hint))
		return ExitFailure
	}

	if err := ctx.Err(); err != nil {
		c.errorln(err.Error())
		return ExitFailure
	}
	if cmd.Action == nil {
		return ExitSuccess
	}
	if err := cmd.Action(ctx, &Context{
		Command: cmd,
		Args:    res.Args,
		Options: res.Options,
		RawArgs: cmdArgs,
		Stdout:  c.stdout,
		Stderr:  c.stderr,
	}); err != nil {
		c.errorln(err.Error())
		return ExitFailure
	}
	return ExitSuccess
}

func (c *CLI) unknownCommandMessage(name string) string {
	cmds := c.sortedCommands()
	names := make([]string, len(cmds))
	for i, cmd := range cmds {
		names[i] = cmd.Name
	}
	if match, ok := suggest.Closest(name, names); ok {
		return fmt.Sprintf("Unknown command: %s. Did you mean %s?", name, match)
	}
	return fmt.Sprintf("Unknown command: %s.", name)
}

func (c *CLI) println(text string) {
	fmt.Fprintln(c.stdout, text)
}

func (c *CLI) errorln(text string) {
	fmt.Fprintln(c.stderr, c.errColor.Error(text))
}
