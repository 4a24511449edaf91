package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	assert "github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) string {
	dir := t.TempDir()

	for name, content := range files {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
	}

	return dir
}

func TestCheckReportsBadIgnoreEntries(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"deepmatch.yaml": `
version: 1
cases:
  - name: a
    actual: {file: a.yaml}
    expected: a.yaml
    ignore: ["b..c"]
  - name: b
    actual: {file: a.yaml}
    expected: a.yaml
`,
		"a.yaml": "a: 1\n",
	})

	var out bytes.Buffer
	err := Check(context.Background(), Settings{WorkingDir: dir, ConfigFile: "deepmatch.yaml", QueryTimeout: time.Second}, &out)
	assert.EqualError(t, err, "1 of 2 cases failed")
	assert.Contains(t, out.String(), "FAIL a\n  failed to parse path reference \"b..c\"")
	assert.Contains(t, out.String(), "ok   b\n")
}

func TestCheckRejectsNonSelectQueries(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"deepmatch.yaml": `
version: 1
cases:
  - name: a
    actual: {query: "delete from person"}
    expected: a.yaml
`,
		"a.yaml": "[]\n",
	})

	var out bytes.Buffer
	err := Check(context.Background(), Settings{
		WorkingDir:   dir,
		ConfigFile:   "deepmatch.yaml",
		QueryTimeout: time.Second,
		DatabaseURL:  "postgres://localhost:1/none",
	}, &out)
	assert.Error(t, err)
	assert.Contains(t, out.String(), "only SELECT statements are allowed")
}

func TestGenerateReadsExpectedFixtures(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"deepmatch.yaml": `
version: 1
package: {path: out/expected}
cases:
  - name: a
    actual: {file: a.yaml}
    expected: missing.yaml
`,
	})

	err := Generate(Settings{WorkingDir: dir, ConfigFile: "deepmatch.yaml"})
	assert.ErrorContains(t, err, `in case "a": failed to read fixture file`)
}
