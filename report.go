// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Header is the first line of a printed report.
const Header = "Unit Test Results:"

// totalsFmt formats a report's second line.
const totalsFmt = "%d total, %d successful, %d failed\n"

// palette holds the colors of a report's parts.
type palette struct {
	header, passed, failed, group, failure *color.Color
}

func newPalette(colored bool) *palette {
	p := &palette{
		header:  color.New(color.Bold),
		passed:  color.New(color.FgGreen, color.Bold),
		failed:  color.New(color.FgRed, color.Bold),
		group:   color.New(color.FgYellow),
		failure: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{
		p.header, p.passed, p.failed, p.group, p.failure,
	} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print writes the receiving state's report to given writer:
//
//	Unit Test Results:
//	<total> total, <successful> successful, <failed> failed
//	<group description>
//	- "<label>: <message>" <file>(<line>)
//
// whereas the last two lines repeat for every group with failures and
// every failure of a group.  Print returns 1 if there are failures;
// otherwise 0.  Write errors are ignored.
func (s *RunState) Print(w io.Writer, colored bool) int {
	p := newPalette(colored)
	p.header.Fprintln(w, Header)
	totals := p.passed
	if s.failed > 0 {
		totals = p.failed
	}
	totals.Fprintf(w, totalsFmt, s.Total(), s.successful, s.failed)
	for _, g := range s.groups {
		p.group.Fprintln(w, g)
		for _, f := range s.failures[g] {
			fmt.Fprint(w, "- ")
			p.failure.Fprintln(w, f)
		}
	}
	if s.failed > 0 {
		return 1
	}
	return 0
}

// PrintResults reports the results of all describe groups run so far
// to the configured output and returns the exit status of the run,
// i.e. 1 if there were failures; 0 otherwise.
func (r *Runner) PrintResults() int {
	return r.state.Print(r.cfg.output(), r.cfg.colored())
}
