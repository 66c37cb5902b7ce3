// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDefinition is wrapped by every ConfigError.
var ErrInvalidDefinition = errors.New("invalid command definition")

// ConfigError reports a defect in a command definition. It is a
// programming error and should abort startup.
type ConfigError struct {
	Field string // e.g. "command name", "option short name"
	Name  string // the offending value, if any
	Msg   string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidDefinition
}

// Kind classifies a ParseError. The set is closed; callers may switch on it.
type Kind int

const (
	UnknownOption Kind = iota + 1
	MissingOptionValue
	InvalidOptionValue
	MissingRequiredOption
	MissingRequiredArgument
	TooManyArguments
	InvalidArgumentValue
	InvalidOptionBundle
)

var kindNames = map[Kind]string{
	UnknownOption:           "UnknownOption",
	MissingOptionValue:      "MissingOptionValue",
	InvalidOptionValue:      "InvalidOptionValue",
	MissingRequiredOption:   "MissingRequiredOption",
	MissingRequiredArgument: "MissingRequiredArgument",
	TooManyArguments:        "TooManyArguments",
	InvalidArgumentValue:    "InvalidArgumentValue",
	InvalidOptionBundle:     "InvalidOptionBundle",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("invalid parse error kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown parse error kind %q", string(b))
}

// ParseError is one problem found in the user's input.
type ParseError struct {
	Kind    Kind
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// ParseErrors is every problem found by one Parse call, in the order
// they were detected.
type ParseErrors []*ParseError

func (e ParseErrors) Error() string {
	msgs := make([]string, len(e))
	for i, pe := range e {
		msgs[i] = pe.Message
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e ParseErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, pe := range e {
		errs[i] = pe
	}
	return errs
}

// Kinds returns the kind of each error in order.
func (e ParseErrors) Kinds() []Kind {
	kinds := make([]Kind, len(e))
	for i, pe := range e {
		kinds[i] = pe.Kind
	}
	return kinds
}

// Has reports whether any error is of kind k.
func (e ParseErrors) Has(k Kind) bool {
	for _, pe := range e {
		if pe.Kind == k {
			return true
		}
	}
	return false
}
