package deepmatch

import (
	"reflect"
	"regexp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koskimas/deepmatch/internal/match"
)

type (
	TestingT = assert.TestingT
	RequireT = require.TestingT
)

type tHelper interface {
	Helper()
}

// assertHost reports through testify's assert package. Failures don't stop
// the test.
type assertHost struct {
	t TestingT
}

func (h *assertHost) Equal(m *Mismatch) bool {
	h.helper()
	return assert.Equal(h.t, m.Expected, m.Actual, m.Error())
}

func (h *assertHost) Match(m *Mismatch, pattern *regexp.Regexp) bool {
	h.helper()

	text, ok := match.Text(m.Actual)
	if !ok {
		return assert.Fail(h.t, "Expect a string to match "+match.Inspect(pattern), m.Error())
	}

	return assert.Regexp(h.t, pattern, text, m.Error())
}

func (h *assertHost) BeA(m *Mismatch, kind reflect.Type) bool {
	h.helper()

	if kind.Kind() == reflect.Interface {
		return assert.Implements(h.t, reflect.Zero(reflect.PointerTo(kind)).Interface(), m.Actual, m.Error())
	}

	return assert.IsType(h.t, reflect.Zero(kind).Interface(), m.Actual, m.Error())
}

func (h *assertHost) Fail(err error) {
	h.helper()
	assert.Fail(h.t, err.Error())
}

func (h *assertHost) helper() {
	if th, ok := h.t.(tHelper); ok {
		th.Helper()
	}
}

// requireHost stops the test at the first failure, like testify's require
// package.
type requireHost struct {
	t RequireT
}

func (h *requireHost) Equal(m *Mismatch) bool {
	h.helper()
	return h.check((&assertHost{t: h.t}).Equal(m))
}

func (h *requireHost) Match(m *Mismatch, pattern *regexp.Regexp) bool {
	h.helper()
	return h.check((&assertHost{t: h.t}).Match(m, pattern))
}

func (h *requireHost) BeA(m *Mismatch, kind reflect.Type) bool {
	h.helper()
	return h.check((&assertHost{t: h.t}).BeA(m, kind))
}

func (h *requireHost) Fail(err error) {
	h.helper()
	require.Fail(h.t, err.Error())
}

// check stops the test the way require does after a failed assert.
func (h *requireHost) check(ok bool) bool {
	if !ok {
		h.t.FailNow()
	}

	return ok
}

func (h *requireHost) helper() {
	if th, ok := h.t.(tHelper); ok {
		th.Helper()
	}
}
