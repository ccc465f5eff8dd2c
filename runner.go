// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"fmt"
	"io"
)

// Labels of failures raised by hooks.
const (
	BeforeLabel = "before()"
	AfterLabel  = "after()"
)

// nilBodyErr is the failure message of a test case without body.
const nilBodyErr = "test case has no body"

// Runner executes describe groups and accumulates their outcomes in
// its RunState.  A Runner is not safe for concurrent use, test cases
// are run strictly one after another.
type Runner struct {
	cfg       Config
	state     *RunState
	log       func(...interface{})
	capturing bool
	captured  []*Failure
}

// NewRunner returns a runner configured by given configuration.
func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg, state: &RunState{}, log: cfg.logger()}
}

// State returns the state accumulated by the receiving runner.
func (r *Runner) State() *RunState { return r.state }

// Output returns the writer the receiving runner reports to.
func (r *Runner) Output() io.Writer { return r.cfg.output() }

// Describe runs given test cases in their order.  Each test case runs
// in a cycle of
//
//   - the before hook if any; a failing before hook skips the test case,
//   - the test case's body,
//   - the after hook if any which runs regardless of previous failures.
//
// A cycle's failures are recorded under given description, the hook
// failures labeled by [BeforeLabel] and [AfterLabel], the test case
// failures labeled by the test case's message.  Like labels and
// messages the description is escaped before it is recorded.  A cycle
// without any failure is recorded as success.  Nothing a hook or a
// body panics with stops the run, not even a panic(nil).
func (r *Runner) Describe(
	description string, hooks Hooks, tests []TestCase,
) {
	r.log(fmt.Sprintf("describe %q", description))
	group := Escape(description)
	for _, tc := range tests {
		r.cycle(group, hooks, tc)
	}
}

func (r *Runner) cycle(group string, hooks Hooks, tc TestCase) {
	failed := false
	fail := func(label string, f *Failure) {
		failed = true
		f.Label = Escape(label)
		r.recordFailure(group, f)
	}

	if before := bodyOf(hooks.Before); before != nil {
		if f := invoke(before, KindHook, hooks.Before.File,
			hooks.Before.Line); f != nil {
			fail(BeforeLabel, f)
		}
	}
	if !failed {
		if f := invoke(tc.Body, KindUnexpected, tc.File, tc.Line); f != nil {
			fail(tc.Message, f)
		}
	}
	if after := bodyOf(hooks.After); after != nil {
		if f := invoke(after, KindHook, hooks.After.File,
			hooks.After.Line); f != nil {
			fail(AfterLabel, f)
		}
	}

	if failed {
		r.log(fmt.Sprintf("it %q: failed", tc.Message))
		return
	}
	r.log(fmt.Sprintf("it %q: passed", tc.Message))
	r.recordSuccess()
}

// invoke calls given body and returns the failure of given kind it
// panicked with; nil if it returned normally.
func invoke(body func(), kind Kind, file string, line int) (f *Failure) {
	if body == nil {
		return &Failure{Kind: kind, Message: nilBodyErr, File: file,
			Line: line}
	}
	done := false
	defer func() {
		if r := recover(); r != nil || !done {
			f = toFailure(r, kind, file, line)
		}
	}()
	body()
	done = true
	return nil
}

func (r *Runner) recordSuccess() {
	if r.capturing {
		return
	}
	r.state.RecordSuccess()
}

func (r *Runner) recordFailure(group string, f *Failure) {
	if f.Kind == KindUnexpected {
		r.log(unexpectedPanic(f.Message))
	}
	if r.capturing {
		r.captured = append(r.captured, f)
		return
	}
	r.state.RecordFailure(group, f.Label, f.File, f.Line, f.Detail())
	r.reportTB(group, f)
}

// StartCapturing makes the receiving runner collect failures instead of
// recording them in its state until StopCapturing is called; successes
// are not counted meanwhile.  StartCapturing discards previously
// captured failures.
func (r *Runner) StartCapturing() {
	r.capturing, r.captured = true, nil
}

// StopCapturing ends capturing and returns the captured failures.
func (r *Runner) StopCapturing() []*Failure {
	ff := r.captured
	r.capturing, r.captured = false, nil
	return ff
}

// Capture runs given function in capturing mode and returns the
// failures it produced, e.g.:
//
//	ff := r.Capture(func() {
//	    r.Describe("failing", gospec.Hooks{}, []gospec.TestCase{
//	        gospec.It("fails", func() { gospec.Equal(1, 2) }),
//	    })
//	})
func (r *Runner) Capture(f func()) []*Failure {
	r.StartCapturing()
	defer func() { r.capturing, r.captured = false, nil }()
	f()
	return r.StopCapturing()
}

// Main runs given specs with a runner configured by given configuration
// and prints the results, i.e. it returns the exit status of the run:
//
//	func main() {
//	    os.Exit(gospec.Main(gospec.Config{}, mathSpecs, stackSpecs))
//	}
func Main(cfg Config, specs ...func(*Runner)) int {
	r := NewRunner(cfg)
	for _, spec := range specs {
		spec(r)
	}
	return r.PrintResults()
}

func location(file string, line int) string {
	return fmt.Sprintf("%s(%d)", file, line)
}
