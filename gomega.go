package deepmatch

import (
	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"

	"github.com/koskimas/deepmatch/internal/match"
)

var _ types.GomegaMatcher = &DeepMatcher{}

// DeepMatcher is a gomega matcher. Every mismatching leaf is listed in the
// failure message.
type DeepMatcher struct {
	Expected any
	Options  []Option

	failures error
}

// MatchDeep returns a gomega matcher for `expected`:
//
//	Expect(actual).To(deepmatch.MatchDeep(expected, deepmatch.IgnorePath("meta")))
func MatchDeep(expected any, opts ...Option) *DeepMatcher {
	return &DeepMatcher{
		Expected: expected,
		Options:  opts,
	}
}

func (m *DeepMatcher) Match(actual any) (bool, error) {
	rec := match.NewRecorder("deep match")
	ok := Match(rec, actual, m.Expected, m.Options...)
	m.failures = rec.ErrorOrNil()

	return ok, nil
}

func (m *DeepMatcher) FailureMessage(actual any) string {
	if m.failures == nil {
		return format.Message(actual, "to deep match", m.Expected)
	}

	return m.failures.Error()
}

func (m *DeepMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(actual, "not to deep match", m.Expected)
}
