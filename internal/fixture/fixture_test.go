package fixture

import (
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/koskimas/deepmatch/internal/match"
)

func TestDecodeYAML(t *testing.T) {
	v, err := Decode([]byte(`
a: 1
b:
  c: [1, 2.5, {d: expected}]
  e: null
  f: true
id: !match ^[a-f0-9]+$
createdAt: !kind time
`))
	assert.NoError(t, err)

	m := v.(map[string]any)
	assert.Equal(t, 1, m["a"])
	assert.Equal(t, map[string]any{
		"c": []any{1, 2.5, map[string]any{"d": "expected"}},
		"e": nil,
		"f": true,
	}, m["b"])

	re, ok := m["id"].(*regexp.Regexp)
	assert.True(t, ok)
	assert.Equal(t, "^[a-f0-9]+$", re.String())

	kind, ok := m["createdAt"].(match.TypeClass)
	assert.True(t, ok)
	assert.Equal(t, "time.Time", kind.Type.String())
}

func TestDecodeJSON(t *testing.T) {
	v, err := Decode([]byte(`{"a": 1, "b": {"c": [1, 2, {"d": "actual"}]}}`))
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a": 1,
		"b": map[string]any{"c": []any{1, 2, map[string]any{"d": "actual"}}},
	}, v)
}

func TestDecodeAliases(t *testing.T) {
	v, err := Decode([]byte(`
base: &base {x: 1}
copy: *base
`))
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"x": 1}, v.(map[string]any)["copy"])
}

func TestDecodeEmptyDocument(t *testing.T) {
	v, err := Decode([]byte(``))
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte(`id: !match "[a-"`))
	assert.ErrorContains(t, err, `line 1: invalid pattern "[a-"`)

	_, err = Decode([]byte("a: 1\nb: !kind uuid\n"))
	assert.ErrorContains(t, err, `line 2: unknown kind "uuid"`)

	_, err = Decode([]byte(`{a: [1, 2`))
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "expected.yaml")
	assert.NoError(t, os.WriteFile(file, []byte("name: !kind string\n"), 0600))

	v, err := Read(file)
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"name": match.TypeClass{Type: reflect.TypeOf("")}}, v)

	_, err = Read(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read fixture file")
}
