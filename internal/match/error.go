package match

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

var ErrCyclic = errors.New("cyclic or too deep expected value")

// Mismatch is a leaf comparison failure. Its message names the path where the
// comparison happened.
type Mismatch struct {
	Path     Path
	Verb     Verb
	Expected any
	Actual   any
	Extra    string
}

func (e *Mismatch) Error() string {
	return Message(e.Path, e.Verb, e.Expected, e.Actual, e.Extra)
}

// Diff returns a `-expected +actual` diff for equality mismatches and an
// empty string for the other verbs.
func (e *Mismatch) Diff() string {
	if e.Verb != VerbEq {
		return ""
	}

	return cmp.Diff(e.Expected, e.Actual, cmp.Exporter(func(reflect.Type) bool {
		return true
	}))
}

// GuardError reports an expected structure the matcher refused to descend
// into.
type GuardError struct {
	Path   Path
	Reason string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("%s at '%s': %s", ErrCyclic, e.Path, e.Reason)
}

func (e *GuardError) Unwrap() error {
	return ErrCyclic
}

func guardErrorf(path Path, format string, args ...any) *GuardError {
	return &GuardError{
		Path:   path,
		Reason: fmt.Sprintf(format, args...),
	}
}
