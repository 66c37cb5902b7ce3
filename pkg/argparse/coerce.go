// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// coercers maps each ValueType to the function converting a raw token
// into a typed value. Adding a type means adding an entry here.
var coercers = map[ValueType]func(raw string) (any, bool){
	TypeString:  coerceString,
	TypeNumber:  coerceNumber,
	TypeBoolean: coerceBoolean,
}

func coerceString(raw string) (any, bool) {
	return raw, true
}

func coerceNumber(raw string) (any, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}

func coerceBoolean(raw string) (any, bool) {
	switch raw {
	case boolTrue:
		return true, true
	case boolFalse:
		return false, true
	}
	return nil, false
}

func coerce(raw string, t ValueType) (any, bool) {
	fn, ok := coercers[t]
	if !ok {
		return nil, false
	}
	return fn(raw)
}

// toFloat reports v as a float64 if it holds any Go numeric kind.
func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// compatible reports whether v is a Go value of the kind t coerces to.
func compatible(v any, t ValueType) bool {
	switch t {
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeNumber:
		_, ok := toFloat(v)
		return ok
	case TypeBoolean:
		_, ok := v.(bool)
		return ok
	}
	return false
}

// inChoices reports whether v equals one of choices. Numbers compare by
// value regardless of their Go kind. An empty list accepts anything.
func inChoices(v any, choices []any) bool {
	if len(choices) == 0 {
		return true
	}
	vf, vNum := toFloat(v)
	for _, c := range choices {
		if vNum {
			if cf, ok := toFloat(c); ok && cf == vf {
				return true
			}
			continue
		}
		if reflect.DeepEqual(c, v) {
			return true
		}
	}
	return false
}

// cloneDefault copies slice defaults so that a Result never shares
// backing storage with its Command or with other Results.
func cloneDefault(v any) any {
	if l, ok := v.([]any); ok {
		return slices.Clone(l)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}
	cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(cp, rv)
	return cp.Interface()
}

// FormatValue renders a default or choice for messages and help text:
// strings quoted, lists bracketed, numbers in their shortest form.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "none"
	case string:
		return `"` + x + `"`
	case bool:
		return strconv.FormatBool(x)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = FormatValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = FormatValue(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprint(v)
}

// FormatChoices renders choices as a comma-separated list.
func FormatChoices(choices []any) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = FormatValue(c)
	}
	return strings.Join(parts, ", ")
}

func choicesSuffix(choices []any) string {
	if len(choices) == 0 {
		return ""
	}
	return " (choices: " + FormatChoices(choices) + ")"
}
