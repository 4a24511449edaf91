package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/koskimas/deepmatch/internal/match"
	"github.com/koskimas/deepmatch/internal/ref"
)

// Case is the outcome of checking one configured case.
type Case struct {
	Name string
	// Failures are the mismatches and guard errors recorded for the case.
	Failures []error
	// Err is set when the case could not be checked at all.
	Err error
}

func (c Case) Failed() bool {
	return c.Err != nil || len(c.Failures) > 0
}

// Failed counts the failed cases.
func Failed(cases []Case) int {
	n := 0

	for _, c := range cases {
		if c.Failed() {
			n += 1
		}
	}

	return n
}

// Write renders one status line per case followed by the failure report of
// each failed case. In verbose mode equality mismatches also get a diff.
func Write(w io.Writer, cases []Case, verbose bool) error {
	_, err := io.WriteString(w, String(cases, verbose))
	return err
}

func String(cases []Case, verbose bool) string {
	s := &stringBuilder{}

	for _, c := range cases {
		writeCase(s, c, verbose)
	}

	return s.String()
}

func writeCase(s *stringBuilder, c Case, verbose bool) {
	if !c.Failed() {
		s.WriteLines(fmt.Sprintf("ok   %s", c.Name))
		return
	}

	s.WriteLines(fmt.Sprintf("FAIL %s", c.Name))
	s.Indent()
	defer s.DeIndent()

	if c.Err != nil {
		s.WriteLines(c.Err.Error())
		return
	}

	s.WriteLines(match.FormatFailures(c.Name, c.Failures))

	if verbose {
		writeDiffs(s, c.Failures)
	}
}

func writeDiffs(s *stringBuilder, failures []error) {
	for _, err := range failures {
		var m *match.Mismatch
		if !errors.As(err, &m) {
			continue
		}

		diff := m.Diff()
		if diff == "" {
			continue
		}

		s.WriteNewLine()
		s.WriteLines(fmt.Sprintf("diff at '%s' (-expected +actual):", ref.Format(m.Path)))
		s.Indent()
		s.WriteLines(diff)
		s.DeIndent()
	}
}
