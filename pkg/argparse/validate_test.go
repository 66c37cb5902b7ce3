// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		wantMsg string // empty means valid
	}{
		{
			name: "valid",
			cmd:  *buildCommand(),
		},
		{
			name:    "command name with whitespace",
			cmd:     Command{Name: "bad name"},
			wantMsg: "Invalid command name: bad name",
		},
		{
			name:    "empty command name",
			cmd:     Command{Name: ""},
			wantMsg: "Invalid command name: ",
		},
		{
			name:    "command name starting with dash",
			cmd:     Command{Name: "-build"},
			wantMsg: "Invalid command name: -build",
		},
		{
			name: "option name starting with dash",
			cmd: Command{Name: "build", Options: []Option{
				{Name: "--output", Type: TypeString},
			}},
			wantMsg: "Invalid option name: --output",
		},
		{
			name: "option name with whitespace",
			cmd: Command{Name: "build", Options: []Option{
				{Name: "out put", Type: TypeString},
			}},
			wantMsg: "Invalid option name: out put",
		},
		{
			name: "duplicate option names",
			cmd: Command{Name: "build", Options: []Option{
				{Name: "output", Type: TypeString},
				{Name: "output", Type: TypeBoolean},
			}},
			wantMsg: "Duplicate option name: output",
		},
		{
			name: "duplicate short names",
			cmd: Command{Name: "build", Options: []Option{
				{Name: "output", Short: "o", Type: TypeString},
				{Name: "other", Short: "o", Type: TypeBoolean},
			}},
			wantMsg: "Duplicate option short name: o",
		},
		{
			name: "short name too long",
			cmd: Command{Name: "build", Options: []Option{
				{Name: "output", Short: "out", Type: TypeString},
			}},
			wantMsg: "Invalid option short name: out",
		},
		{
			name: "short name is dash",
			cmd: Command{Name: "build", Options: []Option{
				{Name: "output", Short: "-", Type: TypeString},
			}},
			wantMsg: "Invalid option short name: -",
		},
		{
			name: "multibyte short name",
			cmd: Command{Name: "build", Options: []Option{
				{Name: "lambda", Short: "λ", Type: TypeBoolean},
			}},
		},
		{
			name: "variadic not last",
			cmd: Command{Name: "build", Args: []Argument{
				{Name: "files", Type: TypeString, Variadic: true},
				{Name: "out", Type: TypeString},
			}},
			wantMsg: "Variadic arguments must be the last argument.",
		},
		{
			name: "two variadics",
			cmd: Command{Name: "build", Args: []Argument{
				{Name: "a", Type: TypeString, Variadic: true},
				{Name: "b", Type: TypeString, Variadic: true},
			}},
			wantMsg: "Variadic arguments must be the last argument.",
		},
		{
			name: "required after optional",
			cmd: Command{Name: "build", Args: []Argument{
				{Name: "config", Type: TypeString},
				{Name: "entry", Type: TypeString, Required: true},
			}},
			wantMsg: "Required arguments cannot follow optional arguments.",
		},
		{
			name: "argument name with whitespace",
			cmd: Command{Name: "build", Args: []Argument{
				{Name: "bad arg", Type: TypeString, Required: true},
			}},
			wantMsg: "Invalid argument name: bad arg",
		},
		{
			name: "missing option type",
			cmd: Command{Name: "build", Options: []Option{
				{Name: "output"},
			}},
			wantMsg: "Invalid type for option: output",
		},
		{
			name: "missing argument type",
			cmd: Command{Name: "build", Args: []Argument{
				{Name: "entry"},
			}},
			wantMsg: "Invalid type for argument: entry",
		},
		{
			name: "default of wrong type",
			cmd: Command{Name: "build", Options: []Option{
				{Name: "count", Type: TypeNumber, Default: "1"},
			}},
			wantMsg: "Default for option count must be a number",
		},
		{
			name: "choice of wrong type",
			cmd: Command{Name: "build", Options: []Option{
				{Name: "mode", Type: TypeString, Choices: []any{"dev", 2}},
			}},
			wantMsg: "Choice 2 for option mode must be a string",
		},
		{
			name: "variadic default not a list",
			cmd: Command{Name: "build", Args: []Argument{
				{Name: "files", Type: TypeString, Variadic: true, Default: "a"},
			}},
			wantMsg: "Default for argument files must be a string",
		},
		{
			name: "variadic default list",
			cmd: Command{Name: "build", Args: []Argument{
				{Name: "files", Type: TypeString, Variadic: true, Default: []string{"a"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cmd)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want %q", tt.wantMsg)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantMsg)
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Errorf("Validate() error type = %T, want *ConfigError", err)
			}
			if !errors.Is(err, ErrInvalidDefinition) {
				t.Errorf("Validate() error does not wrap ErrInvalidDefinition")
			}
		})
	}
}

func TestValidateFirstViolationWins(t *testing.T) {
	cmd := &Command{
		Name: "build",
		Options: []Option{
			{Name: "out put", Type: TypeString},
			{Name: "x", Type: TypeString},
			{Name: "x", Type: TypeString},
		},
		Args: []Argument{
			{Name: "a", Type: TypeString, Variadic: true},
			{Name: "b", Type: TypeString},
		},
	}
	err := Validate(cmd)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("Validate() error = %v", err)
	}
	if cerr.Field != "option name" || cerr.Name != "out put" {
		t.Errorf("ConfigError = %+v, want the option name violation", cerr)
	}
}

func TestValidateIdempotent(t *testing.T) {
	cmd := buildCommand()
	for i := range 2 {
		if err := Validate(cmd); err != nil {
			t.Fatalf("Validate() pass %d error = %v", i, err)
		}
	}
}

func TestValidateGlobalOptions(t *testing.T) {
	help := Option{Name: "help", Short: "h", Type: TypeBoolean}
	version := Option{Name: "version", Short: "v", Type: TypeBoolean}

	if err := ValidateGlobalOptions(help, version); err != nil {
		t.Fatalf("ValidateGlobalOptions() error = %v", err)
	}

	badHelp := help
	badHelp.Type = TypeString
	if err := ValidateGlobalOptions(badHelp, version); err == nil || err.Error() != "The help option must be boolean." {
		t.Errorf("ValidateGlobalOptions(string help) error = %v", err)
	}

	badVersion := version
	badVersion.Type = TypeNumber
	if err := ValidateGlobalOptions(help, badVersion); err == nil || err.Error() != "The version option must be boolean." {
		t.Errorf("ValidateGlobalOptions(number version) error = %v", err)
	}

	badShort := version
	badShort.Short = "vv"
	if err := ValidateGlobalOptions(help, badShort); err == nil || err.Error() != "Invalid option short name: vv" {
		t.Errorf("ValidateGlobalOptions(bad short) error = %v", err)
	}
}

func TestValueTypeText(t *testing.T) {
	for _, vt := range []ValueType{TypeString, TypeNumber, TypeBoolean} {
		b, err := vt.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", vt, err)
		}
		var got ValueType
		if err := got.UnmarshalText(b); err != nil || got != vt {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", b, got, err, vt)
		}
	}
	var vt ValueType
	if err := vt.UnmarshalText([]byte("int")); err == nil {
		t.Errorf("UnmarshalText(int) succeeded")
	}
	if _, err := ValueType(0).MarshalText(); err == nil {
		t.Errorf("MarshalText(0) succeeded")
	}
}

func TestKindText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("InvalidOptionBundle")); err != nil || k != InvalidOptionBundle {
		t.Errorf("UnmarshalText = %v, %v", k, err)
	}
	if got := MissingRequiredArgument.String(); got != "MissingRequiredArgument" {
		t.Errorf("String() = %q", got)
	}
	if err := k.UnmarshalText([]byte("Nope")); err == nil {
		t.Errorf("UnmarshalText(Nope) succeeded")
	}
}
