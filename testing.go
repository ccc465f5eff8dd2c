// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

// TB is the subset of testing.TB a Runner needs to hand its failures
// over to go test:
//
//	func TestStack(t *testing.T) {
//	    r := gospec.NewRunner(gospec.Config{TB: t})
//	    r.Describe("stack#push", gospec.Hooks{}, []gospec.TestCase{
//	        gospec.It("grows", func() { ... }),
//	    })
//	}
//
// Each failure is reported by an Error call with its rendering, i.e.
// the go test fails while the runner still runs all test cases.
type TB interface {
	Helper()
	Error(args ...interface{})
	Log(args ...interface{})
}

// reportTB hands given failure of given group over to a configured TB.
func (r *Runner) reportTB(group string, f *Failure) {
	if r.cfg.TB == nil {
		return
	}
	r.cfg.TB.Helper()
	r.cfg.TB.Error(group + ": " + f.Error() + " " + location(f.File, f.Line))
}
