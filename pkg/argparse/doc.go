// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argparse parses a command's argument vector against a
// declarative definition of its options and positional arguments.
//
// A Command is checked once with Validate, usually at registration time,
// and then handed to Parse for every invocation:
//
//	cmd := &argparse.Command{
//	    Name: "build",
//	    Options: []argparse.Option{
//	        {Name: "output", Short: "o", Type: argparse.TypeString, Required: true},
//	        {Name: "count", Type: argparse.TypeNumber, Default: 1.0},
//	        {Name: "verbose", Short: "v", Type: argparse.TypeBoolean},
//	    },
//	    Args: []argparse.Argument{
//	        {Name: "entry", Type: argparse.TypeString, Required: true},
//	        {Name: "extras", Type: argparse.TypeString, Variadic: true},
//	    },
//	}
//	if err := argparse.Validate(cmd); err != nil {
//	    log.Fatal(err)
//	}
//	res, err := argparse.Parse(os.Args[2:], cmd)
//	var perrs argparse.ParseErrors
//	if errors.As(err, &perrs) {
//	    for _, pe := range perrs {
//	        fmt.Fprintln(os.Stderr, pe.Message)
//	    }
//	    os.Exit(1)
//	}
//	fmt.Println(res.Options.String("output"), res.Args.Strings("extras"))
//
// # Token Syntax
//
//   - Long options: --output dist, --output=dist
//   - Short options: -o dist, -o=dist
//   - Bundles of short booleans: -vf (a bundle cannot take a value)
//   - Booleans are set by presence; --force=false sets an explicit value
//   - "--" ends option parsing; everything after it is positional
//
// A non-boolean option takes the next token as its value unless that
// token is "--" or spells a declared option, so "-5" can be a value
// while "-v" cannot.
//
// # Values
//
// Strings are kept verbatim, numbers become float64 and booleans accept
// only "true" and "false". Declared choices are checked after coercion.
// Variadic arguments yield []any.
//
// # Errors
//
// Parse never stops at the first problem. All errors are returned
// together as ParseErrors and each carries a Kind for callers to switch
// on. Definition problems are reported by Validate as *ConfigError.
package argparse
