// Package gospec is a small behavior driven testing framework.  Test
// cases are registered by describe groups which optionally have a
// before and an after hook:
//
//	r := gospec.NewRunner(gospec.Config{})
//	r.Describe("math#add", gospec.Hooks{}, []gospec.TestCase{
//	    gospec.It("adds positive", func() { gospec.Equal(add(5, 7), 12) }),
//	    gospec.It("adds negative", func() { gospec.Equal(add(5, -7), -2) }),
//	})
//	os.Exit(r.PrintResults())
//
// prints
//
//	Unit Test Results:
//	2 total, 2 successful, 0 failed
//
// If add subtracted instead, e.g. because of a sign error, the
// report would read:
//
//	Unit Test Results:
//	2 total, 0 successful, 2 failed
//	math#add
//	- "adds positive: -2 expected to equal 12." /src/add_test.go(16)
//	- "adds negative: 12 expected to equal -2." /src/add_test.go(17)
//
// A describe group's test cases run one after another in the order
// they were given.  The before hook runs before each test case, the
// after hook after each test case, i.e. hooks run once per test case
// not once per group.  A failing before hook skips its test case while
// the after hook runs regardless of any previous failure of the cycle.
//
// Assertions like [Equal], [In] or [Greater] panic with a [*Failure]
// located at their call site.  The runner recovers whatever a hook or
// a test case panics with and records it under the group's
// description; one failing test case never stops the others.  Failure
// messages are escaped (see [Escape]) hence each recorded failure is
// printed on a single line as shown above.
//
// Structs embedding [Suite] may be run as describe groups as well,
// their Before and After methods become hooks while any other exported
// method without arguments becomes a test case (see [Runner.Run]).  To
// let go test fail on recorded failures configure a runner with the
// test's testing.T (see [TB]).
package gospec
