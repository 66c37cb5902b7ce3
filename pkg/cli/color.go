// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColorMode controls when output is colored.
type ColorMode int

const (
	// ColorAuto colors output written to a terminal unless NO_COLOR is
	// set or TERM is dumb.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
}

// Colorizer wraps text in color when enabled.
type Colorizer struct {
	Enabled bool
}

// NewColorizer decides whether output to w should be colored.
func NewColorizer(mode ColorMode, w io.Writer) Colorizer {
	switch mode {
	case ColorAlways:
		return Colorizer{Enabled: true}
	case ColorNever:
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return Colorizer{}
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) wrap(text string, attrs ...color.Attribute) string {
	if !c.Enabled {
		return text
	}
	col := color.New(attrs...)
	col.EnableColor()
	return col.Sprint(text)
}

// Error renders text as an error line.
func (c Colorizer) Error(text string) string {
	return c.wrap(text, color.FgRed)
}

// Success renders text as a passing result.
func (c Colorizer) Success(text string) string {
	return c.wrap(text, color.FgGreen)
}

// Heading renders a help section heading.
func (c Colorizer) Heading(text string) string {
	return c.wrap(text, color.Bold)
}

// Dim renders secondary text such as usage hints.
func (c Colorizer) Dim(text string) string {
	return c.wrap(text, color.Faint)
}
