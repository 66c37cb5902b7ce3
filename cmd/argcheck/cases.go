// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/argkit/pkg/argparse"
	"github.com/yeetrun/argkit/pkg/deffile"
	"golang.org/x/sync/errgroup"
)

type caseResult struct {
	name string
	err  error // nil if the case passed
}

// checkCases runs every case against prog with at most jobs parses in
// flight. Results keep the order of cases. The returned error is only
// set when ctx is canceled.
func checkCases(ctx context.Context, prog *deffile.Program, cases []deffile.Case, jobs int) ([]caseResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]caseResult, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, c := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = caseResult{name: c.Name, err: checkCase(prog, c)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkCase(prog *deffile.Program, c deffile.Case) error {
	cmd, ok := prog.Command(c.Command)
	if !ok {
		return fmt.Errorf("unknown command %q", c.Command)
	}
	res, err := argparse.Parse(c.Argv, cmd)

	if !c.OK {
		if err == nil {
			return errors.New("parse succeeded, want errors")
		}
		var perrs argparse.ParseErrors
		if !errors.As(err, &perrs) {
			return err
		}
		if len(c.Errors) > 0 && !slices.Equal(perrs.Kinds(), c.Errors) {
			return fmt.Errorf("error kinds = %v, want %v", perrs.Kinds(), c.Errors)
		}
		return nil
	}

	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	if err := compareValues("option", c.Options, res.Options); err != nil {
		return err
	}
	return compareValues("argument", c.Args, res.Args)
}

// compareValues checks the names listed in want against got.
func compareValues(what string, want map[string]any, got argparse.Values) error {
	names := make([]string, 0, len(want))
	for name := range want {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !got.Has(name) {
			return fmt.Errorf("%s %s missing", what, name)
		}
		if diff := cmp.Diff(want[name], got[name]); diff != "" {
			return fmt.Errorf("%s %s mismatch (-want +got):\n%s", what, name, diff)
		}
	}
	return nil
}
