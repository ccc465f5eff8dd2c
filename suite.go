// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"reflect"
	"runtime"
	"sort"
	"strings"
)

// Suite implements the private method of the SuiteEmbedder interface.
// I.e. if you want to run a struct's methods as describe group using
// [Runner.Run] you must embed this type, e.g.:
//
//	type Stack struct {
//	    gospec.Suite
//	    s *stack
//	}
//
//	// optional Before-method
//	func (s *Stack) Before() { s.s = newStack(1, 2) }
//
//	func (s *Stack) Pop_returns_the_top() { gospec.Equal(s.s.pop(), 2) }
//
//	// optional After-method
//
//	r.Run(&Stack{})
type Suite struct{}

func (s *Suite) suite() *Suite { return s }

// SuiteEmbedder is automatically implemented by embedding a Suite.
type SuiteEmbedder interface {
	suite() *Suite
}

// Describer may be implemented by a suite to provide the description
// of its describe group which defaults to the suite's type name.
type Describer interface {
	Description() string
}

// special methods of a suite which are not test cases.
var special = map[string]bool{
	"Before": true, "After": true, "Description": true,
}

// Run runs given suite as describe group whose before and after hooks
// are the suite's Before and After methods.  Each other exported
// method without arguments and return values is a test case whose
// message is the method's name with underscores replaced by spaces.
// Test cases are run in the order they are declared.
func (r *Runner) Run(suite SuiteEmbedder) {
	description := suiteName(suite)
	if d, ok := suite.(Describer); ok {
		description = d.Description()
	}
	value, rtype := reflect.ValueOf(suite), reflect.TypeOf(suite)

	hooks := Hooks{}
	tests := []TestCase{}
	for i := 0; i < rtype.NumMethod(); i++ {
		m := rtype.Method(i)
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 0 {
			continue
		}
		body := value.Method(i).Interface().(func())
		file, line := methodSource(rtype, m)
		switch m.Name {
		case "Before":
			hooks.Before = &Hook{Body: body, File: file, Line: line}
		case "After":
			hooks.After = &Hook{Body: body, File: file, Line: line}
		default:
			if special[m.Name] {
				continue
			}
			tests = append(tests, TestCase{
				Message: strings.ReplaceAll(m.Name, "_", " "),
				Body:    body,
				File:    file,
				Line:    line,
			})
		}
	}
	sort.SliceStable(tests, func(i, j int) bool {
		if tests[i].File != tests[j].File {
			return tests[i].File < tests[j].File
		}
		return tests[i].Line < tests[j].Line
	})

	r.Describe(description, hooks, tests)
}

func suiteName(suite SuiteEmbedder) string {
	t := reflect.TypeOf(suite)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// autogenerated is the file runtime reports for compiler generated
// method wrappers.
const autogenerated = "<autogenerated>"

// methodSource returns the file and line of given method's declaration.
// A value receiver method of a pointer type is a compiler generated
// wrapper, i.e. its declaration is looked up at the value type.
func methodSource(rtype reflect.Type, m reflect.Method) (string, int) {
	file, line := funcSource(m.Func)
	if file != autogenerated || rtype.Kind() != reflect.Ptr {
		return file, line
	}
	if vm, ok := rtype.Elem().MethodByName(m.Name); ok {
		return funcSource(vm.Func)
	}
	return file, line
}

func funcSource(f reflect.Value) (string, int) {
	fn := runtime.FuncForPC(f.Pointer())
	if fn == nil {
		return "", 0
	}
	return fn.FileLine(fn.Entry())
}
