// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"

	"github.com/yeetrun/argkit/pkg/argparse"
	"github.com/yeetrun/argkit/pkg/cli"
	"github.com/yeetrun/argkit/pkg/deffile"
)

// invocation is what every command of a loaded program prints.
type invocation struct {
	Command string          `json:"command"`
	Options argparse.Values `json:"options"`
	Args    argparse.Values `json:"args"`
}

// newCLI builds a CLI whose commands print their parsed input as JSON.
// Name, version and description in cfg are taken from prog.
func newCLI(prog *deffile.Program, cfg cli.Config) (*cli.CLI, error) {
	cfg.Name = prog.Name
	cfg.Version = prog.Version
	if cfg.Version == "" {
		cfg.Version = defaultVersion
	}
	cfg.Description = prog.Description

	c, err := cli.New(cfg)
	if err != nil {
		return nil, err
	}
	for _, cmd := range prog.Commands {
		if err := c.Register(&cli.Command{Command: cmd, Action: printInvocation}); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func printInvocation(_ context.Context, c *cli.Context) error {
	enc := json.NewEncoder(c.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(invocation{
		Command: c.Command.Name,
		Options: c.Options,
		Args:    c.Args,
	})
}
