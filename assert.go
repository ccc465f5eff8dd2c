// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Assertions panic with a *Failure located at their call site iff they
// fail.  Each of them accepts an optional custom message which replaces
// its default message.

// equalErr is the default message of a failed Equal assertion.
const equalErr = "%s expected to equal %s."

// notEqualErr is the default message of a failed NotEqual assertion.
const notEqualErr = "%s expected to NOT equal %s."

// nilErr is the default message of a failed Nil assertion.
const nilErr = "expected to be <nil>."

// notNilErr is the default message of a failed NotNil assertion.
const notNilErr = "expected to NOT be <nil>."

// inErr is the default message of a failed In assertion.
const inErr = "%s is not in %s."

// notInErr is the default message of a failed NotIn assertion.
const notInErr = "%s is in %s."

const (
	greaterErr        = "%s expected to be greater than %s."
	lessErr           = "%s expected to be less than %s."
	greaterOrEqualErr = "%s expected to be greater or equal to %s."
	lessOrEqualErr    = "%s expected to be less or equal to %s."
)

// panicsErr is the default message of a failed Panics assertion.
const panicsErr = "Exception was not thrown. Expected one."

// panicsWithErr is the message of a PanicsWith assertion whose function
// didn't panic.
const panicsWithErr = "Exception was not thrown. Expected %s"

// panicMismatchErr is the message of a PanicsWith assertion whose
// function panicked with an other message than expected.
const panicMismatchErr = "Exception was thrown. Expected %s but got %s"

// exportAll lets cmp compare unexported fields as well.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func equal(a, b interface{}) bool {
	return cmp.Equal(a, b, exportAll)
}

// explain returns a diff of given values if they are composite values.
func explain(a, b interface{}) string {
	switch reflect.ValueOf(a).Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map,
		reflect.Ptr:
		return cmp.Diff(a, b, exportAll)
	}
	return ""
}

// Equal fails iff given values are not equal.  Values are compared by
// go-cmp's equality including unexported fields.
func Equal[T any](a, b T, msg ...string) {
	if equal(a, b) {
		return
	}
	raise(fmt.Sprintf(equalErr, Render(a), Render(b)), msg, explain(a, b))
}

// NotEqual fails iff given values are equal.
func NotEqual[T any](a, b T, msg ...string) {
	if !equal(a, b) {
		return
	}
	raise(fmt.Sprintf(notEqualErr, Render(a), Render(b)), msg, "")
}

// isNil reports if given value is nil or a nil pointer, slice, map,
// channel, function or interface.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Nil fails iff given value is not nil.
func Nil(v interface{}, msg ...string) {
	if isNil(v) {
		return
	}
	raise(nilErr, msg, "")
}

// NotNil fails iff given value is nil.
func NotNil(v interface{}, msg ...string) {
	if !isNil(v) {
		return
	}
	raise(notNilErr, msg, "")
}

func contains[E any](set []E, v E) bool {
	return slices.IndexFunc(set, func(e E) bool {
		return equal(v, e)
	}) >= 0
}

// In fails iff given value equals none of given set's elements.
func In[E any](v E, set []E, msg ...string) {
	if contains(set, v) {
		return
	}
	raise(fmt.Sprintf(inErr, Render(v), renderSet(set)), msg, "")
}

// NotIn fails iff given value equals one of given set's elements.
func NotIn[E any](v E, set []E, msg ...string) {
	if !contains(set, v) {
		return
	}
	raise(fmt.Sprintf(notInErr, Render(v), renderSet(set)), msg, "")
}

// Greater fails iff a <= b.
func Greater[O constraints.Ordered](a, b O, msg ...string) {
	if a > b {
		return
	}
	raise(fmt.Sprintf(greaterErr, Render(a), Render(b)), msg, "")
}

// Less fails iff a >= b.
func Less[O constraints.Ordered](a, b O, msg ...string) {
	if a < b {
		return
	}
	raise(fmt.Sprintf(lessErr, Render(a), Render(b)), msg, "")
}

// GreaterOrEqual fails iff a < b.
func GreaterOrEqual[O constraints.Ordered](a, b O, msg ...string) {
	if a >= b {
		return
	}
	raise(fmt.Sprintf(greaterOrEqualErr, Render(a), Render(b)), msg, "")
}

// LessOrEqual fails iff a > b.
func LessOrEqual[O constraints.Ordered](a, b O, msg ...string) {
	if a <= b {
		return
	}
	raise(fmt.Sprintf(lessOrEqualErr, Render(a), Render(b)), msg, "")
}

// recovered calls given function and returns what it panicked with.
// A function which doesn't return normally has panicked even if the
// recovered value is nil.
func recovered(f func()) (r interface{}, panicked bool) {
	done := false
	defer func() {
		r = recover()
		panicked = !done
	}()
	f()
	done = true
	return nil, false
}

// Panics fails iff given function doesn't panic.  Any panic of given
// function is recovered, including failing assertions.
func Panics(f func(), msg ...string) {
	if _, panicked := recovered(f); panicked {
		return
	}
	raise(panicsErr, msg, "")
}

// PanicsWith fails iff given function doesn't panic or panics with an
// other message than the expected one.  The message of a panicking
// assertion is its failure message, of an error its Error value and
// of any other value its string representation.  A panic(nil) has the
// message "panic(nil)".
func PanicsWith(expected string, f func(), msg ...string) {
	r, panicked := recovered(f)
	if !panicked {
		raise(fmt.Sprintf(panicsWithErr, Escape(expected)), msg, "")
	}
	if got := panicMessage(r); got != Escape(expected) {
		raise(fmt.Sprintf(panicMismatchErr, Escape(expected), got), msg, "")
	}
}
