// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"strings"
	"testing"

	"github.com/yeetrun/argkit/pkg/argparse"
)

func TestGlobalHelp(t *testing.T) {
	c, _, _ := newTestCLI(t)

	got := c.GlobalHelp()
	want := strings.Join([]string{
		"Usage: demo <command> [options]",
		"",
		"Demo CLI",
		"",
		"Commands:",
		"  (none)",
		"",
		"Options:",
		"  -h, --help     Show help",
		"  -v, --version  Show version",
	}, "\n")
	if got != want {
		t.Errorf("GlobalHelp() =\n%s\nwant:\n%s", got, want)
	}
}

func TestGlobalHelpListsCommandsSorted(t *testing.T) {
	c, _, _ := newTestCLI(t)
	c.MustRegister(
		&Command{Command: argparse.Command{Name: "test", Description: "Run tests"}},
		&Command{Command: argparse.Command{Name: "build", Description: "Build the project"}},
	)

	got := c.GlobalHelp()
	want := "Commands:\n  build  Build the project\n  test   Run tests\n"
	if !strings.Contains(got, want) {
		t.Errorf("GlobalHelp() =\n%s\nwant it to contain:\n%s", got, want)
	}
}

func TestCommandHelp(t *testing.T) {
	c, _, _ := newTestCLI(t)
	cmd := &Command{Command: argparse.Command{
		Name:        "build",
		Description: "Build the project",
		Options: []argparse.Option{
			{Name: "mode", Short: "m", Description: "Mode", Type: argparse.TypeString, Required: true, Choices: []any{"dev", "prod"}},
			{Name: "count", Description: "Repeat count", Type: argparse.TypeNumber, Default: 1},
		},
		Args: []argparse.Argument{
			{Name: "entry", Description: "Entry file", Type: argparse.TypeString, Required: true},
			{Name: "files", Description: "Input files", Type: argparse.TypeString, Variadic: true, Required: true},
		},
	}}
	c.MustRegister(cmd)

	got := c.CommandHelp(cmd)
	want := strings.Join([]string{
		"Usage: demo build [options] <entry> <files...>",
		"",
		"Build the project",
		"",
		"Arguments:",
		"  entry  Entry file (required)",
		"  files  Input files (required)",
		"",
		"Options:",
		`  -m, --mode <string>  Mode (required, choices: "dev", "prod")`,
		"  --count <number>     Repeat count (default: 1)",
		"  -h, --help           Show help",
		"  -v, --version        Show version",
	}, "\n")
	if got != want {
		t.Errorf("CommandHelp() =\n%s\nwant:\n%s", got, want)
	}
}

func TestCommandHelpNoArguments(t *testing.T) {
	c, _, _ := newTestCLI(t)
	cmd := &Command{Command: argparse.Command{Name: "info", Description: "Show info"}}

	got := c.CommandHelp(cmd)
	if !strings.Contains(got, "Arguments:\n  (none)") {
		t.Errorf("CommandHelp() =\n%s\nwant an empty Arguments section", got)
	}
	if !strings.HasPrefix(got, "Usage: demo info [options]\n") {
		t.Errorf("CommandHelp() usage line = %q", strings.SplitN(got, "\n", 2)[0])
	}
}

func TestArgumentUsage(t *testing.T) {
	tests := []struct {
		arg  argparse.Argument
		want string
	}{
		{argparse.Argument{Name: "entry", Required: true}, "<entry>"},
		{argparse.Argument{Name: "config"}, "[config]"},
		{argparse.Argument{Name: "files", Variadic: true}, "[files...]"},
		{argparse.Argument{Name: "files", Variadic: true, Required: true}, "<files...>"},
	}
	for _, tt := range tests {
		if got := argumentUsage(tt.arg); got != tt.want {
			t.Errorf("argumentUsage(%+v) = %q, want %q", tt.arg, got, tt.want)
		}
	}
}

func TestColorizer(t *testing.T) {
	off := Colorizer{}
	if got := off.Error("x"); got != "x" {
		t.Errorf("disabled Error() = %q", got)
	}
	on := NewColorizer(ColorAlways, nil)
	if got := on.Error("x"); got == "x" || !strings.Contains(got, "x") {
		t.Errorf("enabled Error() = %q, want colored text", got)
	}
	if NewColorizer(ColorNever, nil).Enabled {
		t.Error("ColorNever enabled color")
	}

	t.Setenv("NO_COLOR", "1")
	if NewColorizer(ColorAuto, nil).Enabled {
		t.Error("ColorAuto enabled color with NO_COLOR set")
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "auto": ColorAuto, "always": ColorAlways, "never": ColorNever} {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Errorf("ParseColorMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseColorMode("sometimes"); err == nil {
		t.Error("ParseColorMode(sometimes) succeeded")
	}
}
