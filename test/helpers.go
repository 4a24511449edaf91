package test

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/koskimas/deepmatch/internal/cmd"
)

func getWd(t *testing.T, folder string) string {
	wd, err := os.Getwd()
	assert.NoError(t, err, "failed to get working directory")
	return filepath.Join(wd, folder)
}

func getSettings(t *testing.T, dir string) cmd.Settings {
	s, err := cmd.LoadSettings(dir)
	assert.NoError(t, err)
	return s
}

func runCommand(t *testing.T, s cmd.Settings, args ...string) (string, error) {
	var out bytes.Buffer

	c := cmd.NewRootCommand(s, &out)
	c.SetArgs(args)
	err := c.ExecuteContext(context.Background())

	return out.String(), err
}

// copyDir copies the test folder `src` into a temporary directory so that
// generated files don't end up in the source tree.
func copyDir(t *testing.T, src string) string {
	dst := t.TempDir()

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		if d.IsDir() {
			return os.MkdirAll(filepath.Join(dst, rel), 0700)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		return os.WriteFile(filepath.Join(dst, rel), data, 0600)
	})
	assert.NoError(t, err, "failed to copy test folder")

	return dst
}
