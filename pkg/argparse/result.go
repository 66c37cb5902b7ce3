// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import "reflect"

// Result is a successful parse.
type Result struct {
	// Options holds every supplied option, every option with a default,
	// and false for every unsupplied boolean option without a default.
	Options Values
	// Args holds every declared argument. Optional arguments that were
	// not supplied and have no default are present with a nil value.
	Args Values
}

// Values maps option or argument names to coerced values: string,
// float64, bool, or []any for variadic arguments.
type Values map[string]any

// Has reports whether name is present, even if its value is nil.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// String returns the string value of name, or "" if it is absent or
// not a string.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Number returns the numeric value of name, or 0 if it is absent or not
// a number. Defaults declared with integer Go types are converted.
func (v Values) Number(name string) float64 {
	f, _ := toFloat(v[name])
	return f
}

// Bool returns the boolean value of name, or false.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// List returns the values bound to a variadic argument.
func (v Values) List(name string) []any {
	switch l := v[name].(type) {
	case []any:
		return l
	case nil:
		return nil
	}
	rv := reflect.ValueOf(v[name])
	if rv.Kind() != reflect.Slice {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Strings returns the values bound to a variadic argument that are
// strings, in order.
func (v Values) Strings(name string) []string {
	var out []string
	for _, e := range v.List(name) {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
