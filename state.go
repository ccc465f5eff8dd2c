// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import "fmt"

// failureFmt renders a recorded failure.
const failureFmt = `"%s: %s" %s(%d)`

// RunState accumulates the outcomes of all describe groups of a run:
// the number of successful test cases, the number of failures and for
// each describe group description the rendered failures recorded under
// it.  Groups sharing a description share their failures.  The zero
// value is ready to use.
type RunState struct {
	successful int
	failed     int
	groups     []string
	failures   map[string][]string
}

// RecordSuccess counts a successful test case.
func (s *RunState) RecordSuccess() { s.successful++ }

// RecordFailure counts a failure and appends its rendering
//
//	"label: message" file(line)
//
// to the failures of given describe group.
func (s *RunState) RecordFailure(
	group, label, file string, line int, message string,
) {
	s.failed++
	if s.failures == nil {
		s.failures = map[string][]string{}
	}
	if _, ok := s.failures[group]; !ok {
		s.groups = append(s.groups, group)
	}
	s.failures[group] = append(s.failures[group],
		fmt.Sprintf(failureFmt, label, message, file, line))
}

// Successful returns the number of successful test cases.
func (s *RunState) Successful() int { return s.successful }

// Failed returns the number of recorded failures.
func (s *RunState) Failed() int { return s.failed }

// Total is the sum of successes and failures.
func (s *RunState) Total() int { return s.successful + s.failed }

// Groups returns the descriptions of groups having failures in the
// order their first failure was recorded.
func (s *RunState) Groups() []string {
	return append([]string(nil), s.groups...)
}

// Failures returns the rendered failures of given group description.
func (s *RunState) Failures(group string) []string {
	return append([]string(nil), s.failures[group]...)
}
