// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/yeetrun/argkit/pkg/suggest"
)

// Parse matches tokens against cmd, which must have passed Validate.
// tokens excludes the program and command names.
//
// On success it returns the coerced options and arguments. Otherwise it
// returns a nil Result and a ParseErrors holding every problem found in
// the whole input, in the order they were detected.
//
// Parse keeps no state between calls and does not modify cmd, so it is
// safe to call concurrently.
func Parse(tokens []string, cmd *Command) (*Result, error) {
	s := newScanner(tokens, cmd)
	s.scan()
	s.checkRequiredOptions()
	args := s.bindArguments()

	if len(s.errs) > 0 {
		return nil, s.errs
	}
	return &Result{Options: s.values, Args: args}, nil
}

// scanner holds the state of one Parse call.
type scanner struct {
	cmd    *Command
	tokens []string
	longs  map[string]*Option
	shorts map[string]*Option

	values     Values
	present    map[string]bool
	positional []string
	errs       ParseErrors
}

func newScanner(tokens []string, cmd *Command) *scanner {
	s := &scanner{
		cmd:     cmd,
		tokens:  tokens,
		longs:   make(map[string]*Option, len(cmd.Options)),
		shorts:  make(map[string]*Option, len(cmd.Options)),
		values:  make(Values, len(cmd.Options)),
		present: make(map[string]bool),
	}
	for i := range cmd.Options {
		o := &cmd.Options[i]
		s.longs[o.Name] = o
		if o.Short != "" {
			s.shorts[o.Short] = o
		}
		switch {
		case o.Default != nil:
			s.values[o.Name] = cloneDefault(o.Default)
		case o.Type == TypeBoolean:
			s.values[o.Name] = false
		}
	}
	return s
}

// scan classifies each token in a single pass. After a bare "--" every
// remaining token is positional.
func (s *scanner) scan() {
	allowOptions := true
	for i := 0; i < len(s.tokens); {
		tok := s.tokens[i]
		switch {
		case allowOptions && tok == terminator:
			allowOptions = false
			i++
		case allowOptions && strings.HasPrefix(tok, longPrefix) && len(tok) > len(longPrefix):
			i += s.long(tok, i)
		case allowOptions && strings.HasPrefix(tok, shortPrefix) && len(tok) > len(shortPrefix):
			i += s.short(tok, i)
		default:
			s.positional = append(s.positional, tok)
			i++
		}
	}
}

// long handles --name, --name=value and --name value. It returns the
// number of tokens consumed.
func (s *scanner) long(tok string, i int) int {
	head, value, hasValue := strings.Cut(tok, equalsSep)
	opt, ok := s.longs[strings.TrimPrefix(head, longPrefix)]
	if !ok {
		s.unknown(tok, s.longCandidates())
		return 1
	}
	return s.option(opt, LongFlag(opt.Name), value, hasValue, i)
}

// short handles -s, -s=value, -s value and bundles such as -vf.
func (s *scanner) short(tok string, i int) int {
	head, value, hasValue := strings.Cut(tok, equalsSep)
	body := strings.TrimPrefix(head, shortPrefix)

	if utf8.RuneCountInString(body) > 1 {
		s.bundle(tok, body, hasValue)
		return 1
	}

	opt, ok := s.shorts[body]
	if !ok {
		s.unknown(ShortFlag(body), s.allCandidates())
		return 1
	}
	// An attached value on a short boolean is ignored.
	if opt.Type == TypeBoolean {
		s.set(opt, true)
		return 1
	}
	return s.option(opt, ShortFlag(opt.Short), value, hasValue, i)
}

// option applies a recognized option. Booleans without an attached
// value are set to true; other types take the attached value or the
// next token.
func (s *scanner) option(opt *Option, label, value string, hasValue bool, i int) int {
	if hasValue {
		s.assign(opt, value, label)
		return 1
	}
	if opt.Type == TypeBoolean {
		s.set(opt, true)
		return 1
	}

	if i+1 >= len(s.tokens) {
		s.fail(MissingOptionValue, "Missing value for option: %s", label)
		return 1
	}
	next := s.tokens[i+1]
	if next == terminator || s.isRecognizedOptionToken(next) {
		s.fail(MissingOptionValue, "Missing value for option: %s", label)
		return 1
	}
	s.assign(opt, next, label)
	return 2
}

// bundle sets every short boolean in body. The first unknown or
// non-boolean member stops the bundle; members before it stay set.
func (s *scanner) bundle(tok, body string, hasValue bool) {
	if hasValue {
		s.fail(InvalidOptionBundle, "Invalid option bundle: %s", tok)
		return
	}
	for _, r := range body {
		short := string(r)
		opt, ok := s.shorts[short]
		if !ok {
			s.unknown(ShortFlag(short), s.allCandidates())
			return
		}
		if opt.Type != TypeBoolean {
			s.fail(InvalidOptionBundle, "Invalid option bundle: %s", tok)
			return
		}
		s.set(opt, true)
	}
}

// isRecognizedOptionToken reports whether tok spells a declared option,
// in which case it is never consumed as another option's value.
func (s *scanner) isRecognizedOptionToken(tok string) bool {
	if !strings.HasPrefix(tok, shortPrefix) {
		return false
	}
	if strings.HasPrefix(tok, longPrefix) {
		head, _, _ := strings.Cut(tok, equalsSep)
		_, ok := s.longs[strings.TrimPrefix(head, longPrefix)]
		return ok
	}
	r, size := utf8.DecodeRuneInString(tok[len(shortPrefix):])
	if size == 0 {
		return false
	}
	_, ok := s.shorts[string(r)]
	return ok
}

func (s *scanner) assign(opt *Option, raw, label string) {
	v, ok := coerce(raw, opt.Type)
	if !ok {
		s.fail(InvalidOptionValue, "Invalid value for option: %s (expected %s)", label, opt.Type)
		return
	}
	if !inChoices(v, opt.Choices) {
		s.fail(InvalidOptionValue, "Invalid value for option: %s%s", label, choicesSuffix(opt.Choices))
		return
	}
	s.set(opt, v)
}

func (s *scanner) set(opt *Option, v any) {
	s.values[opt.Name] = v
	s.present[opt.Name] = true
}

func (s *scanner) unknown(label string, candidates []string) {
	if match, ok := suggest.Closest(label, candidates); ok {
		s.fail(UnknownOption, "Unknown option: %s. Did you mean %s?", label, match)
		return
	}
	s.fail(UnknownOption, "Unknown option: %s.", label)
}

func (s *scanner) fail(kind Kind, format string, args ...any) {
	s.errs = append(s.errs, &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

func (s *scanner) longCandidates() []string {
	out := make([]string, 0, len(s.cmd.Options))
	for _, o := range s.cmd.Options {
		out = append(out, LongFlag(o.Name))
	}
	return out
}

func (s *scanner) allCandidates() []string {
	var out []string
	for _, o := range s.cmd.Options {
		out = append(out, o.Flags()...)
	}
	return out
}

func (s *scanner) checkRequiredOptions() {
	for _, o := range s.cmd.Options {
		if o.Required && !s.present[o.Name] {
			s.fail(MissingRequiredOption, "Missing required option: %s", LongFlag(o.Name))
		}
	}
}

// bindArguments matches positional tokens to declared arguments in order.
func (s *scanner) bindArguments() Values {
	defs := s.cmd.Args
	args := make(Values, len(defs))

	variadic := slices.ContainsFunc(defs, func(a Argument) bool { return a.Variadic })
	if !variadic && len(s.positional) > len(defs) {
		s.fail(TooManyArguments, "Too many arguments: %s", strings.Join(s.positional[len(defs):], ", "))
	}

	for i, def := range defs {
		if def.Variadic {
			args[def.Name] = s.bindVariadic(def, i)
			break
		}

		if i >= len(s.positional) {
			switch {
			case def.Required:
				s.fail(MissingRequiredArgument, "Missing required argument: %s", def.Name)
			case def.Default != nil:
				args[def.Name] = cloneDefault(def.Default)
			default:
				args[def.Name] = nil
			}
			continue
		}

		if v, ok := s.argumentValue(def, s.positional[i]); ok {
			args[def.Name] = v
		}
	}
	return args
}

// bindVariadic collects every positional token from index from onward.
func (s *scanner) bindVariadic(def Argument, from int) any {
	var rest []string
	if from < len(s.positional) {
		rest = s.positional[from:]
	}
	if len(rest) == 0 {
		if def.Required {
			s.fail(MissingRequiredArgument, "Missing required argument: %s", def.Name)
		} else if def.Default != nil {
			return cloneDefault(def.Default)
		}
	}

	values := make([]any, 0, len(rest))
	for _, raw := range rest {
		if v, ok := s.argumentValue(def, raw); ok {
			values = append(values, v)
		}
	}
	return values
}

func (s *scanner) argumentValue(def Argument, raw string) (any, bool) {
	v, ok := coerce(raw, def.Type)
	if !ok {
		s.fail(InvalidArgumentValue, "Invalid value for argument: %s (expected %s)", def.Name, def.Type)
		return nil, false
	}
	if !inChoices(v, def.Choices) {
		s.fail(InvalidArgumentValue, "Invalid value for argument: %s%s", def.Name, choicesSuffix(def.Choices))
		return nil, false
	}
	return v, true
}
