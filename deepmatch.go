// Package deepmatch asserts that an actual value structurally matches an
// expected one.
//
// Every value reachable from the expected structure must match the value at
// the same place in the actual structure. Keys and elements that exist only
// in the actual value are not inspected, so expected values work as partial
// patterns. Each leaf is asserted separately and its failure names the path
// where it happened:
//
//	Expected nested hash key at 'b.c.2.d'
//	to eq
//	"expected",
//	but got
//	"actual"
//
// Leaves are compared for equality unless the expected value is a
// *regexp.Regexp (the actual value must match it) or a type class created
// with Kind or KindOf (the actual value must be of that type).
package deepmatch

import (
	"reflect"
	"regexp"

	"github.com/koskimas/deepmatch/internal/match"
)

type (
	// Host performs the primitive assertions of a test framework.
	Host = match.Host
	// Mismatch is a leaf failure reported to a Host.
	Mismatch = match.Mismatch
	Path     = match.Path
	// TypeClass is the expected value created by Kind and KindOf.
	TypeClass = match.TypeClass
	Recorder  = match.Recorder
)

// Assert checks actual against expected with testify's assert functions. The
// test continues after a failure, so every mismatching leaf is reported.
// Returns false if any leaf failed.
func Assert(t TestingT, actual, expected any, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return Match(&assertHost{t: t}, actual, expected, opts...)
}

// Require is like Assert but stops the test at the first mismatching leaf.
func Require(t RequireT, actual, expected any, opts ...Option) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	Match(&requireHost{t: t}, actual, expected, opts...)
}

// Match checks actual against expected, reporting failures to `host`.
// Returns false if any leaf failed.
func Match(host Host, actual, expected any, opts ...Option) bool {
	counter := match.NewCounter(host)
	match.Assert(actual, expected, newOptions(opts).params(counter))

	return counter.Failures() == 0
}

// Aggregate runs `fn` with a host that collects every failure reported to
// it and reports them to `t` as one combined error when `fn` returns.
func Aggregate(t TestingT, name string, fn func(h Host)) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	rec := match.NewRecorder(name)
	fn(rec)

	if err := rec.ErrorOrNil(); err != nil {
		t.Errorf("%s", err.Error())
		return false
	}

	return true
}

// NewRecorder creates a standalone host that collects failures.
func NewRecorder(name string) *Recorder {
	return match.NewRecorder(name)
}

// Kind returns an expected value that matches any actual value of type T.
// Interface types match every value implementing them.
func Kind[T any]() TypeClass {
	return TypeClass{Type: reflect.TypeOf((*T)(nil)).Elem()}
}

// KindOf is like Kind for a type only known at runtime, such as one taken
// from reflect.TypeOf.
func KindOf(t reflect.Type) TypeClass {
	return TypeClass{Type: t}
}

// Pattern compiles `expr`. It panics if the expression is invalid.
func Pattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(expr)
}
