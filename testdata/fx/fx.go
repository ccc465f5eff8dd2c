// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fx provides gospec fixture suites.
//
// Each fixture suite embeds a FixtureLog to which its methods append
// what they did, which then can be evaluated after the suite was run.
package fx

import (
	"errors"
	"fmt"

	"github.com/slukits/gospec"
)

// FixtureLog collects the logs of a fixture suite's methods.
type FixtureLog struct {
	Logs string
}

func (fl *FixtureLog) log(args ...interface{}) {
	fl.Logs += fmt.Sprint(args...)
}

// DeclarationOrder's test cases are declared in an other order than
// their names sort.  Its before hook counts the test cases.
type DeclarationOrder struct {
	gospec.Suite
	FixtureLog
	N int
}

func (s *DeclarationOrder) Before() { s.N++ }

func (s *DeclarationOrder) Zeta_runs_first() {
	s.log("z")
	gospec.Equal(s.N, 1)
}

func (s *DeclarationOrder) Alpha_runs_second() {
	s.log("a")
	gospec.Equal(s.N, 2)
}

func (s *DeclarationOrder) Mu_runs_third() {
	s.log("m")
	gospec.Equal(s.N, 3)
}

// Unexported methods are no test cases.
func (s *DeclarationOrder) private() { s.log("p") }

// Methods with arguments are no test cases.
func (s *DeclarationOrder) With_argument(n int) { s.log("w") }

// Methods with results are no test cases.
func (s *DeclarationOrder) With_result() int {
	s.log("r")
	return 0
}

// Described provides its own description and value receiver methods.
type Described struct {
	gospec.Suite
	*FixtureLog
}

func (s Described) Description() string { return "fx#described" }

func (s Described) After() { s.log("-after") }

func (s Described) Fails() {
	s.log("fails")
	gospec.Equal("a", "b")
}

func (s Described) Passes() { s.log("passes") }

// ErrBroken is the error FailingBefore's before hook panics with.
var ErrBroken = errors.New("broken fixture")

// FailingBefore has a before hook which always panics.
type FailingBefore struct {
	gospec.Suite
	FixtureLog
}

func (s *FailingBefore) Before() { panic(ErrBroken) }

func (s *FailingBefore) After() { s.log("after;") }

func (s *FailingBefore) First() { s.log("first;") }

func (s *FailingBefore) Second() { s.log("second;") }
