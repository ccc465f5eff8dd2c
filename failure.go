// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"fmt"
	"runtime"
	"strings"
)

// Kind categorizes the origin of a Failure.
type Kind int

const (
	// KindAssertion failures are raised by this package's assertions.
	KindAssertion Kind = iota
	// KindHook failures are raised inside a before or after hook.
	KindHook
	// KindUnexpected failures are any other panic of a test body.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindAssertion:
		return "assertion"
	case KindHook:
		return "hook"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Failure is the one failure signal of gospec.  Assertions panic with
// a *Failure, the Runner recovers it (or converts any other recovered
// value into one) and records it.  Message and Explanation are always
// escaped, see [Escape].
type Failure struct {
	Kind Kind

	// Label is the display label of the failing test case or hook.
	Label string

	// Message reports what failed.
	Message string

	// Explanation optionally details Message, e.g. a diff of two
	// values which were expected to be equal.
	Explanation string

	// File and Line locate the statement which raised the failure.
	File string
	Line int
}

// Detail combines a failure's message with its explanation if any.
func (f *Failure) Detail() string {
	if f.Explanation == "" {
		return f.Message
	}
	return f.Message + " diff: " + f.Explanation
}

func (f *Failure) Error() string {
	if f.Label == "" {
		return f.Detail()
	}
	return f.Label + ": " + f.Detail()
}

// raise panics with an assertion failure located at the caller of the
// assertion calling raise.  A non-empty custom message replaces given
// default message.
func raise(def string, msg []string, explanation string) {
	_, file, line, _ := runtime.Caller(2)
	message := def
	if len(msg) > 0 {
		message = strings.Join(msg, " ")
	}
	panic(&Failure{
		Kind:        KindAssertion,
		Message:     Escape(message),
		Explanation: Escape(explanation),
		File:        file,
		Line:        line,
	})
}

// nilPanic is the message of a panic(nil).
const nilPanic = "panic(nil)"

// panicMessage extracts the message of a recovered value.
func panicMessage(r interface{}) string {
	switch r := r.(type) {
	case nil:
		return nilPanic
	case *Failure:
		return r.Message
	case error:
		return Escape(r.Error())
	default:
		return Render(r)
	}
}

// toFailure turns a value recovered from a hook or test body into a
// failure of given kind.  A recovered *Failure keeps its message and
// location, any other value is located at the panicking statement if
// it can be found on the stack, otherwise at given fallback location.
func toFailure(r interface{}, kind Kind, file string, line int) *Failure {
	if f, ok := r.(*Failure); ok {
		cp := *f
		if kind == KindHook {
			cp.Kind = KindHook
		}
		return &cp
	}
	if pFile, pLine, ok := panicSite(); ok {
		file, line = pFile, pLine
	}
	return &Failure{
		Kind:    kind,
		Message: panicMessage(r),
		File:    file,
		Line:    line,
	}
}

// panicSite must be called from a deferred function during panicking.
// It reports the location of the first non-runtime frame following
// the runtime's panic frame.
func panicSite() (string, int, bool) {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	panicking := false
	for {
		fr, more := frames.Next()
		if fr.Function == "runtime.gopanic" {
			panicking = true
		} else if panicking && !strings.HasPrefix(fr.Function, "runtime.") {
			return fr.File, fr.Line, true
		}
		if !more {
			return "", 0, false
		}
	}
}

// unexpectedPanic formats a recovered value which isn't a failure for
// the engine's log.
func unexpectedPanic(r interface{}) string {
	return fmt.Sprintf("unexpected panic: %v", r)
}
