package ref

import (
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/koskimas/deepmatch/internal/match"
)

func TestParse(t *testing.T) {
	tests := []struct {
		ref  string
		path match.Path
	}{
		{"", match.Path{}},
		{"a", match.NewPath("a")},
		{"b.c.2.d", match.NewPath("b", "c", 2, "d")},
		{`meta\.data.x`, match.NewPath("meta.data", "x")},
		{"-1", match.NewPath("-1")},
	}

	for _, test := range tests {
		p, err := Parse(test.ref)
		assert.NoError(t, err, test.ref)
		assert.Equal(t, test.path, p, test.ref)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("a..b")
	assert.EqualError(t, err, `failed to parse path reference "a..b": empty segment after "a"`)

	_, err = Parse(".a")
	assert.EqualError(t, err, `failed to parse path reference ".a": empty first segment`)

	_, err = ParseAll([]string{"a", "b."})
	assert.Error(t, err)
}

func TestFormatIsInverseOfParse(t *testing.T) {
	for _, r := range []string{"a", "b.c.2.d", `meta\.data.x`} {
		p, err := Parse(r)
		assert.NoError(t, err)
		assert.Equal(t, r, Format(p))
	}
}
