package match

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/onsi/gomega/format"
)

// Verb names the comparison a leaf assertion performed.
type Verb string

const (
	VerbEq    Verb = "eq"
	VerbMatch Verb = "match"
	VerbBeA   Verb = "be a"
)

// failure builds mismatches for one node. It is bound to the node's path and
// actual value; the verb and expected value are supplied by the strategy that
// ends up failing.
type failure struct {
	path   Path
	actual any
	extra  string
}

func newFailure(p Params, actual any) failure {
	return failure{
		path:   p.Path(),
		actual: actual,
		extra:  p.Extra(),
	}
}

func (f failure) mismatch(verb Verb, expected any) *Mismatch {
	return &Mismatch{
		Path:     f.path,
		Verb:     verb,
		Expected: expected,
		Actual:   f.actual,
		Extra:    f.extra,
	}
}

// Message formats a leaf failure:
//
//	<extra>
//	Expected nested hash key at 'b.c.2.d'
//	to eq
//	"expected",
//	but got
//	"actual"
func Message(path Path, verb Verb, expected, actual any, extra string) string {
	heading := "Expected hash key at"
	if len(path) > 1 {
		heading = "Expected nested hash key at"
	}

	lines := make([]string, 0, 6)
	if extra != "" {
		lines = append(lines, extra)
	}

	lines = append(lines,
		fmt.Sprintf("%s '%s'", heading, path),
		"to "+string(verb),
		Inspect(expected)+",",
		"but got",
		Inspect(actual),
	)

	return strings.Join(lines, "\n")
}

// Inspect returns the display representation of a value used in failure
// messages.
func Inspect(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case *regexp.Regexp:
		if x == nil {
			return "nil"
		}

		return "/" + x.String() + "/"
	case Pattern:
		return Inspect(x.Regexp)
	case TypeClass:
		return x.String()
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer, reflect.Interface:
		// Containers may be cyclic. format.Object stops at format.MaxDepth.
		return format.Object(v, 0)
	}

	return fmt.Sprintf("%#v", v)
}
