// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// ColorMode controls the coloring of a printed report.
type ColorMode int

const (
	// ColorAuto colors a report iff it is written to stdout and
	// stdout is a terminal which doesn't opt out by NO_COLOR.
	ColorAuto ColorMode = iota
	// ColorAlways colors a report whatever its output.
	ColorAlways
	// ColorNever prints a report without colors.
	ColorNever
)

// Config configures a [Runner].  Its zero value reports to stdout and
// doesn't log.
type Config struct {

	// Output receives the report, it defaults to stdout.
	Output io.Writer

	// Color decides if the report is colored.
	Color ColorMode

	// Logger receives the engine's progress messages; it defaults to
	// TB's Log method if TB is set and a no-op otherwise.
	Logger func(args ...interface{})

	// TB additionally reports each recorded failure to the go testing
	// framework, see [TB].
	TB TB
}

func (c Config) output() io.Writer {
	if c.Output == nil {
		return os.Stdout
	}
	return c.Output
}

func (c Config) colored() bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return c.output() == io.Writer(os.Stdout) && !color.NoColor
}

func (c Config) logger() func(...interface{}) {
	switch {
	case c.Logger != nil:
		return c.Logger
	case c.TB != nil:
		return c.TB.Log
	}
	return func(...interface{}) {}
}
