// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import "runtime"

// TestCase is a named test body created by [It].
type TestCase struct {
	Message string
	Body    func()

	// File and Line locate the test case's registration.
	File string
	Line int
}

// It returns a test case with given message and body which is located
// at It's call site.
func It(message string, body func()) TestCase {
	_, file, line, _ := runtime.Caller(1)
	return TestCase{Message: message, Body: body, File: file, Line: line}
}

// Hook is a fixture callback run before or after each test case of a
// describe group.
type Hook struct {
	Body func()
	File string
	Line int
}

func newHook(body func()) *Hook {
	_, file, line, _ := runtime.Caller(2)
	return &Hook{Body: body, File: file, Line: line}
}

// Before returns a hook for the Before field of [Hooks].
func Before(body func()) *Hook { return newHook(body) }

// After returns a hook for the After field of [Hooks].
func After(body func()) *Hook { return newHook(body) }

// Hooks configures the optional hooks of a describe group.  Its zero
// value has neither a before nor an after hook, e.g.:
//
//	r.Describe("stack#pop", gospec.Hooks{
//	    Before: gospec.Before(func() { s = newStack(1, 2) }),
//	}, []gospec.TestCase{
//	    gospec.It("returns the top", func() { gospec.Equal(s.pop(), 2) }),
//	})
type Hooks struct {
	Before *Hook
	After  *Hook
}

// bodyOf returns given hook's body or nil if there is none.
func bodyOf(h *Hook) func() {
	if h == nil {
		return nil
	}
	return h.Body
}
