package match

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
)

// Recorder is a Host that performs the comparisons itself and collects every
// failure instead of stopping at the first one. It is safe for concurrent
// use.
type Recorder struct {
	name string

	mu  sync.Mutex
	err *multierror.Error
}

// NewRecorder creates a recorder for the aggregation block `name`.
func NewRecorder(name string) *Recorder {
	return &Recorder{name: name}
}

func (r *Recorder) Equal(m *Mismatch) bool {
	if assert.ObjectsAreEqual(m.Expected, m.Actual) {
		return true
	}

	r.record(m)
	return false
}

func (r *Recorder) Match(m *Mismatch, pattern *regexp.Regexp) bool {
	if text, ok := Text(m.Actual); ok && pattern.MatchString(text) {
		return true
	}

	r.record(m)
	return false
}

func (r *Recorder) BeA(m *Mismatch, kind reflect.Type) bool {
	if IsA(m.Actual, kind) {
		return true
	}

	r.record(m)
	return false
}

func (r *Recorder) Fail(err error) {
	r.record(err)
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err == nil {
		return 0
	}

	return len(r.err.Errors)
}

// Errors returns the recorded failures in the order they were reported.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err == nil {
		return nil
	}

	return append([]error(nil), r.err.Errors...)
}

// ErrorOrNil returns the combined failure report, or nil if nothing failed.
func (r *Recorder) ErrorOrNil() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.err.ErrorOrNil()
}

func (r *Recorder) record(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.err = multierror.Append(r.err, err)
	r.err.ErrorFormat = r.format
}

func (r *Recorder) format(errs []error) string {
	return FormatFailures(r.name, errs)
}

// FormatFailures renders failures as one numbered report:
//
//	Got 2 failures from failure aggregation block "fixtures":
//
//	  1) Expected hash key at 'a'
//	     to eq
//	     ...
func FormatFailures(name string, errs []error) string {
	noun := "failures"
	if len(errs) == 1 {
		noun = "failure"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Got %d %s from failure aggregation block %q:", len(errs), noun, name)

	for i, err := range errs {
		label := fmt.Sprintf("  %d) ", i+1)
		indent := strings.Repeat(" ", len(label))

		b.WriteString("\n\n")
		for j, line := range strings.Split(err.Error(), "\n") {
			if j == 0 {
				b.WriteString(label)
			} else {
				b.WriteString("\n")
				b.WriteString(indent)
			}

			b.WriteString(line)
		}
	}

	return b.String()
}
