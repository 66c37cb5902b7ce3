// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"strings"
	"unicode/utf8"

	"github.com/yeetrun/argkit/pkg/argparse"
)

const (
	indent    = "  "
	columnGap = 2

	usageCommandPlaceholder = "<command>"
	usageOptionsPlaceholder = "[options]"
)

// GlobalHelp renders the program-level help text.
func (c *CLI) GlobalHelp() string {
	lines := []string{c.usage(nil)}
	if c.description != "" {
		lines = append(lines, "", c.description)
	}
	lines = append(lines, c.commandLines()...)
	lines = append(lines, c.optionLines([]argparse.Option{c.help, c.version})...)
	return strings.Join(lines, "\n")
}

// CommandHelp renders the help text of a registered command.
func (c *CLI) CommandHelp(cmd *Command) string {
	lines := []string{c.usage(cmd)}
	if cmd.Description != "" {
		lines = append(lines, "", cmd.Description)
	}
	lines = append(lines, c.argumentLines(cmd.Args)...)

	opts := make([]argparse.Option, 0, len(cmd.Options)+2)
	opts = append(opts, cmd.Options...)
	opts = append(opts, c.help, c.version)
	lines = append(lines, c.optionLines(opts)...)
	return strings.Join(lines, "\n")
}

func (c *CLI) usage(cmd *Command) string {
	segments := []string{c.name}
	if cmd != nil {
		segments = append(segments, cmd.Name)
	} else {
		segments = append(segments, usageCommandPlaceholder)
	}
	segments = append(segments, usageOptionsPlaceholder)
	if cmd != nil && len(cmd.Args) > 0 {
		parts := make([]string, len(cmd.Args))
		for i, a := range cmd.Args {
			parts[i] = argumentUsage(a)
		}
		segments = append(segments, strings.Join(parts, " "))
	}
	return c.color.Heading("Usage:") + " " + strings.Join(segments, " ")
}

func argumentUsage(a argparse.Argument) string {
	name := a.Name
	if a.Variadic {
		name += "..."
	}
	if a.Required {
		return "<" + name + ">"
	}
	return "[" + name + "]"
}

func (c *CLI) commandLines() []string {
	lines := []string{"", c.color.Heading("Commands:")}
	cmds := c.sortedCommands()
	if len(cmds) == 0 {
		return append(lines, indent+"(none)")
	}
	rows := make([][2]string, len(cmds))
	for i, cmd := range cmds {
		rows[i] = [2]string{cmd.Name, cmd.Description}
	}
	return append(lines, table(rows)...)
}

func (c *CLI) argumentLines(args []argparse.Argument) []string {
	lines := []string{"", c.color.Heading("Arguments:")}
	if len(args) == 0 {
		return append(lines, indent+"(none)")
	}
	rows := make([][2]string, len(args))
	for i, a := range args {
		rows[i] = [2]string{a.Name, describe(a.Description, a.Required, a.Default, a.Choices)}
	}
	return append(lines, table(rows)...)
}

func (c *CLI) optionLines(opts []argparse.Option) []string {
	lines := []string{"", c.color.Heading("Options:")}
	rows := make([][2]string, len(opts))
	for i, o := range opts {
		rows[i] = [2]string{optionLabel(o), describe(o.Description, o.Required, o.Default, o.Choices)}
	}
	return append(lines, table(rows)...)
}

// optionLabel renders "-o, --output <string>"; booleans take no value.
func optionLabel(o argparse.Option) string {
	label := strings.Join(o.Flags(), ", ")
	if o.Type != argparse.TypeBoolean {
		label += " <" + o.Type.String() + ">"
	}
	return label
}

// describe appends "(required, default: x, choices: a, b)" as applicable.
func describe(desc string, required bool, def any, choices []any) string {
	var suffixes []string
	if required {
		suffixes = append(suffixes, "required")
	}
	if def != nil {
		suffixes = append(suffixes, "default: "+argparse.FormatValue(def))
	}
	if len(choices) > 0 {
		suffixes = append(suffixes, "choices: "+argparse.FormatChoices(choices))
	}
	if len(suffixes) == 0 {
		return desc
	}
	return desc + " (" + strings.Join(suffixes, ", ") + ")"
}

// table aligns the first column of rows.
func table(rows [][2]string) []string {
	width := 0
	for _, r := range rows {
		width = max(width, utf8.RuneCountInString(r[0]))
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		pad := width - utf8.RuneCountInString(r[0]) + columnGap
		lines[i] = indent + r[0] + strings.Repeat(" ", pad) + r[1]
	}
	return lines
}
