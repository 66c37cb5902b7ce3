// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validate checks that cmd is internally consistent. It returns a
// *ConfigError for the first violation found and nil otherwise.
//
// Checks run in a fixed order: command name, each option's name and
// short alias, option name uniqueness, short alias uniqueness, variadic
// placement, argument names and required-after-optional ordering, value
// types, and finally the types of declared defaults and choices.
func Validate(cmd *Command) error {
	checks := []func(*Command) error{
		checkCommandName,
		checkOptions,
		checkUniqueOptionNames,
		checkUniqueShorts,
		checkVariadic,
		checkArguments,
		checkValueTypes,
		checkDefaultsAndChoices,
	}
	for _, check := range checks {
		if err := check(cmd); err != nil {
			return err
		}
	}
	return nil
}

// ValidateGlobalOptions checks the help and version options a CLI adds
// to every command. Both must be boolean and well formed.
func ValidateGlobalOptions(help, version Option) error {
	if help.Type != TypeBoolean {
		return &ConfigError{Field: "help option", Name: help.Name, Msg: "The help option must be boolean."}
	}
	if version.Type != TypeBoolean {
		return &ConfigError{Field: "version option", Name: version.Name, Msg: "The version option must be boolean."}
	}
	if err := checkOption(help); err != nil {
		return err
	}
	return checkOption(version)
}

// validName reports whether s is non-empty and contains no whitespace.
func validName(s string) bool {
	return s != "" && !strings.ContainsFunc(s, unicode.IsSpace)
}

func checkCommandName(cmd *Command) error {
	if !validName(cmd.Name) || strings.HasPrefix(cmd.Name, shortPrefix) {
		return &ConfigError{Field: "command name", Name: cmd.Name, Msg: fmt.Sprintf("Invalid command name: %s", cmd.Name)}
	}
	return nil
}

func checkOption(o Option) error {
	if !validName(o.Name) || strings.HasPrefix(o.Name, shortPrefix) {
		return &ConfigError{Field: "option name", Name: o.Name, Msg: fmt.Sprintf("Invalid option name: %s", o.Name)}
	}
	if o.Short != "" && (utf8.RuneCountInString(o.Short) != 1 || o.Short == shortPrefix) {
		return &ConfigError{Field: "option short name", Name: o.Short, Msg: fmt.Sprintf("Invalid option short name: %s", o.Short)}
	}
	return nil
}

func checkOptions(cmd *Command) error {
	for _, o := range cmd.Options {
		if err := checkOption(o); err != nil {
			return err
		}
	}
	return nil
}

func checkUnique(values []string, field string) error {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			return &ConfigError{Field: field, Name: v, Msg: fmt.Sprintf("Duplicate %s: %s", field, v)}
		}
		seen[v] = true
	}
	return nil
}

func checkUniqueOptionNames(cmd *Command) error {
	names := make([]string, 0, len(cmd.Options))
	for _, o := range cmd.Options {
		names = append(names, o.Name)
	}
	return checkUnique(names, "option name")
}

func checkUniqueShorts(cmd *Command) error {
	var shorts []string
	for _, o := range cmd.Options {
		if o.Short != "" {
			shorts = append(shorts, o.Short)
		}
	}
	return checkUnique(shorts, "option short name")
}

func checkVariadic(cmd *Command) error {
	for i, a := range cmd.Args {
		if a.Variadic && i != len(cmd.Args)-1 {
			return &ConfigError{Field: "argument", Name: a.Name, Msg: "Variadic arguments must be the last argument."}
		}
	}
	return nil
}

func checkArguments(cmd *Command) error {
	seenOptional := false
	for _, a := range cmd.Args {
		if !validName(a.Name) {
			return &ConfigError{Field: "argument name", Name: a.Name, Msg: fmt.Sprintf("Invalid argument name: %s", a.Name)}
		}
		if !a.Required {
			seenOptional = true
		} else if seenOptional {
			return &ConfigError{Field: "argument", Name: a.Name, Msg: "Required arguments cannot follow optional arguments."}
		}
	}
	return nil
}

func checkValueTypes(cmd *Command) error {
	for _, o := range cmd.Options {
		if !o.Type.valid() {
			return &ConfigError{Field: "option type", Name: o.Name, Msg: fmt.Sprintf("Invalid type for option: %s", o.Name)}
		}
	}
	for _, a := range cmd.Args {
		if !a.Type.valid() {
			return &ConfigError{Field: "argument type", Name: a.Name, Msg: fmt.Sprintf("Invalid type for argument: %s", a.Name)}
		}
	}
	return nil
}

func checkDefaultsAndChoices(cmd *Command) error {
	for _, o := range cmd.Options {
		if o.Default != nil && !compatible(o.Default, o.Type) {
			return &ConfigError{Field: "option default", Name: o.Name, Msg: fmt.Sprintf("Default for option %s must be a %s", o.Name, o.Type)}
		}
		if err := checkChoices(o.Choices, o.Type, "option", o.Name); err != nil {
			return err
		}
	}
	for _, a := range cmd.Args {
		if a.Default != nil && !defaultFits(a) {
			return &ConfigError{Field: "argument default", Name: a.Name, Msg: fmt.Sprintf("Default for argument %s must be a %s", a.Name, a.Type)}
		}
		if err := checkChoices(a.Choices, a.Type, "argument", a.Name); err != nil {
			return err
		}
	}
	return nil
}

// defaultFits reports whether a's default matches its type. Variadic
// arguments take a list of values.
func defaultFits(a Argument) bool {
	if !a.Variadic {
		return compatible(a.Default, a.Type)
	}
	rv := reflect.ValueOf(a.Default)
	if rv.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if !compatible(rv.Index(i).Interface(), a.Type) {
			return false
		}
	}
	return true
}

func checkChoices(choices []any, t ValueType, what, name string) error {
	for _, c := range choices {
		if !compatible(c, t) {
			return &ConfigError{
				Field: what + " choices",
				Name:  name,
				Msg:   fmt.Sprintf("Choice %s for %s %s must be a %s", FormatValue(c), what, name, t),
			}
		}
	}
	return nil
}
