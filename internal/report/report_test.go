package report

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/koskimas/deepmatch/internal/match"
)

func failures(t *testing.T, actual, expected any) []error {
	rec := match.NewRecorder("test")
	match.Assert(actual, expected, match.NewParams(rec))
	assert.NotZero(t, rec.Len())
	return rec.Errors()
}

func TestWrite(t *testing.T) {
	cases := []Case{
		{Name: "person"},
		{
			Name: "pets",
			Failures: failures(t,
				map[string]any{"a": 1, "b": []any{"cat"}},
				map[string]any{"a": 2, "b": []any{"dog"}},
			),
		},
		{Name: "broken", Err: errors.New("failed to read fixture file")},
	}

	var buf bytes.Buffer
	assert.NoError(t, Write(&buf, cases, false))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "ok   person\nFAIL pets\n"))
	assert.Contains(t, out, "\n  Got 2 failures from failure aggregation block \"pets\":\n\n    1) Expected hash key at 'a'\n")
	assert.Contains(t, out, "    2) Expected nested hash key at 'b.0'\n")
	assert.Contains(t, out, "FAIL broken\n  failed to read fixture file\n")
	assert.NotContains(t, out, "diff at")
	assert.Equal(t, 2, Failed(cases))

	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestWriteVerboseDiffs(t *testing.T) {
	out := String([]Case{{
		Name: "person",
		Failures: failures(t,
			map[string]any{"name": "Jennifer", "id": 1, "file.yaml": "a"},
			map[string]any{"name": "Jen", "id": match.TypeClass{Type: reflect.TypeOf("")}, "file.yaml": "b"},
		),
	}}, true)

	assert.Contains(t, out, "diff at 'name' (-expected +actual):")
	assert.Contains(t, out, `"Jen"`)
	assert.NotContains(t, out, "diff at 'id'")
	assert.Contains(t, out, `diff at 'file\.yaml' (-expected +actual):`)
}

func TestStringBuilder(t *testing.T) {
	s := &stringBuilder{}
	s.WriteLines("a")
	s.Indent()
	s.WriteLines("b\n\nc")
	s.DeIndent()
	s.WriteString("d")

	assert.Equal(t, "a\n  b\n\n  c\nd", s.String())
}
