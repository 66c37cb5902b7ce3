// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deffile

import "github.com/yeetrun/argkit/pkg/argparse"

// The decoders disagree on number types: TOML yields int64, YAML int,
// JSON float64. Parse produces float64, so declared values are brought
// in line with it.

func normalizeCommand(cmd *argparse.Command) {
	for i := range cmd.Options {
		o := &cmd.Options[i]
		o.Default = normalize(o.Default)
		normalizeSlice(o.Choices)
	}
	for i := range cmd.Args {
		a := &cmd.Args[i]
		a.Default = normalize(a.Default)
		normalizeSlice(a.Choices)
	}
}

func normalizeSlice(vs []any) {
	for i, v := range vs {
		vs[i] = normalize(v)
	}
}

func normalizeMap(m map[string]any) {
	for k, v := range m {
		m[k] = normalize(v)
	}
}

func normalize(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case []any:
		normalizeSlice(x)
		return x
	case map[string]any:
		normalizeMap(x)
		return x
	}
	return v
}
