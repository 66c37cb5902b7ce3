// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import "fmt"

// Token spellings recognized by the parser.
const (
	shortPrefix = "-"
	longPrefix  = "--"
	terminator  = "--"
	equalsSep   = "="
	boolTrue    = "true"
	boolFalse   = "false"
)

// ValueType is the type an option or argument value is coerced to.
type ValueType int

const (
	// TypeString accepts any token verbatim.
	TypeString ValueType = iota + 1
	// TypeNumber accepts a finite decimal number and yields a float64.
	TypeNumber
	// TypeBoolean accepts exactly "true" or "false".
	TypeBoolean
)

func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

func (t ValueType) valid() bool {
	return t >= TypeString && t <= TypeBoolean
}

// MarshalText implements encoding.TextMarshaler.
func (t ValueType) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("invalid value type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ValueType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "string":
		*t = TypeString
	case "number":
		*t = TypeNumber
	case "boolean":
		*t = TypeBoolean
	default:
		return fmt.Errorf("unknown value type %q (want string, number or boolean)", string(b))
	}
	return nil
}

// Option declares a named flag, written --name or -s.
type Option struct {
	Name        string    `json:"name" yaml:"name" toml:"name"`
	Short       string    `json:"short,omitempty" yaml:"short,omitempty" toml:"short,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Type        ValueType `json:"type" yaml:"type" toml:"type"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty" toml:"required,omitempty"`
	// Default is used when the option is not supplied. Nil means no default.
	Default any   `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty"`
	Choices []any `json:"choices,omitempty" yaml:"choices,omitempty" toml:"choices,omitempty"`
}

// Argument declares a positional argument.
type Argument struct {
	Name        string    `json:"name" yaml:"name" toml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Type        ValueType `json:"type" yaml:"type" toml:"type"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty" toml:"required,omitempty"`
	Default     any       `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty"`
	Choices     []any     `json:"choices,omitempty" yaml:"choices,omitempty" toml:"choices,omitempty"`
	// Variadic arguments take every remaining positional token. Only the
	// last argument may be variadic.
	Variadic bool `json:"variadic,omitempty" yaml:"variadic,omitempty" toml:"variadic,omitempty"`
}

// Command is the declared shape of one command. It must be checked with
// Validate before it is handed to Parse and must not be modified after.
type Command struct {
	Name        string     `json:"name" yaml:"name" toml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Options     []Option   `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
	Args        []Argument `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
}

// LongFlag returns the --name spelling of an option name.
func LongFlag(name string) string {
	return longPrefix + name
}

// ShortFlag returns the -s spelling of a short alias.
func ShortFlag(short string) string {
	return shortPrefix + short
}

// Flags returns the spellings of o, short first when it has one.
func (o Option) Flags() []string {
	if o.Short != "" {
		return []string{ShortFlag(o.Short), LongFlag(o.Name)}
	}
	return []string{LongFlag(o.Name)}
}
