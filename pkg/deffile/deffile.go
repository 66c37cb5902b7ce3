// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deffile reads program definitions and parse cases from TOML,
// YAML or JSON files. The format is picked from the file extension.
package deffile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/argkit/pkg/argparse"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a definition or case file.
type Format int

const (
	Unknown Format = iota // extension not recognized
	TOML                  // .toml
	YAML                  // .yaml or .yml
	JSON                  // .json
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	}
	return "unknown"
}

// ErrUnknownFormat is returned for files whose extension is not one of
// .toml, .yaml, .yml or .json.
var ErrUnknownFormat = errors.New("unknown definition file format")

// DetectFormat picks the decoder for path by its extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yml", ".yaml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return Unknown, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Program is a whole CLI described in a file.
type Program struct {
	Name        string             `json:"name" yaml:"name" toml:"name"`
	Version     string             `json:"version" yaml:"version" toml:"version"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Commands    []argparse.Command `json:"commands" yaml:"commands" toml:"commands"`
}

// Command returns the named command definition.
func (p *Program) Command(name string) (*argparse.Command, bool) {
	for i := range p.Commands {
		if p.Commands[i].Name == name {
			return &p.Commands[i], true
		}
	}
	return nil, false
}

// Load reads and validates the program definition at path. A missing
// name defaults to the file's base name without extension.
func Load(path string) (*Program, error) {
	var p Program
	if err := decodeFile(path, &p); err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	for i := range p.Commands {
		cmd := &p.Commands[i]
		normalizeCommand(cmd)
		if err := argparse.Validate(cmd); err != nil {
			return nil, fmt.Errorf("%s: command %d (%q): %w", path, i, cmd.Name, err)
		}
	}
	return &p, nil
}

// Case is one invocation and its expected outcome.
type Case struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Command string   `json:"command" yaml:"command" toml:"command"`
	Argv    []string `json:"argv" yaml:"argv" toml:"argv"`
	OK      bool     `json:"ok" yaml:"ok" toml:"ok"`
	// Errors lists the expected error kinds in order when OK is false.
	Errors []argparse.Kind `json:"errors,omitempty" yaml:"errors,omitempty" toml:"errors,omitempty"`
	// Options and Args hold expected values for a successful parse. Only
	// the listed names are compared.
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
	Args    map[string]any `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
}

type caseFile struct {
	Cases []Case `json:"cases" yaml:"cases" toml:"cases"`
}

// LoadCases reads the "cases" list from the file at path.
func LoadCases(path string) ([]Case, error) {
	var f caseFile
	if err := decodeFile(path, &f); err != nil {
		return nil, err
	}
	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}
		if c.Command == "" {
			return nil, fmt.Errorf("%s: %s: missing command", path, c.Name)
		}
		normalizeMap(c.Options)
		normalizeMap(c.Args)
	}
	return f.Cases, nil
}

func decodeFile(path string, v any) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := decode(bs, format, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func decode(bs []byte, format Format, v any) error {
	switch format {
	case TOML:
		md, err := toml.Decode(string(bs), v)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
		return nil
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(bs))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(bs))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	}
	return ErrUnknownFormat
}
