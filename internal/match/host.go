package match

import (
	"fmt"
	"reflect"
	"regexp"
)

// Host performs the primitive assertions of a test framework. Each method
// receives the mismatch describing the failure it should report if the
// assertion does not hold, and returns whether it held.
type Host interface {
	Equal(m *Mismatch) bool
	Match(m *Mismatch, pattern *regexp.Regexp) bool
	BeA(m *Mismatch, kind reflect.Type) bool
	// Fail reports a failure that is not a leaf comparison.
	Fail(err error)
}

// IsA reports whether v is of type kind. For interface kinds v must
// implement the interface; other kinds require the exact type. nil is never
// of any kind.
func IsA(v any, kind reflect.Type) bool {
	if v == nil || kind == nil {
		return false
	}

	t := reflect.TypeOf(v)

	if kind.Kind() == reflect.Interface {
		return t.Implements(kind)
	}

	return t == kind
}

// Text returns the string that patterns are matched against. Only strings,
// byte slices and fmt.Stringer values have one.
func Text(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case []byte:
		return string(x), true
	case fmt.Stringer:
		return x.String(), true
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String(), true
	}

	return "", false
}

// Counter wraps a host and counts the failures reported through it.
type Counter struct {
	Host
	failures int
}

func NewCounter(host Host) *Counter {
	return &Counter{Host: host}
}

func (c *Counter) Equal(m *Mismatch) bool {
	return c.count(c.Host.Equal(m))
}

func (c *Counter) Match(m *Mismatch, pattern *regexp.Regexp) bool {
	return c.count(c.Host.Match(m, pattern))
}

func (c *Counter) BeA(m *Mismatch, kind reflect.Type) bool {
	return c.count(c.Host.BeA(m, kind))
}

func (c *Counter) Fail(err error) {
	c.failures += 1
	c.Host.Fail(err)
}

func (c *Counter) Failures() int {
	return c.failures
}

func (c *Counter) count(ok bool) bool {
	if !ok {
		c.failures += 1
	}

	return ok
}
