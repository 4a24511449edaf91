package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	assert "github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	wd := t.TempDir()

	s, err := LoadSettings(wd)
	assert.NoError(t, err)
	assert.Equal(t, Settings{
		WorkingDir:   wd,
		ConfigFile:   "deepmatch.yaml",
		QueryTimeout: 30 * time.Second,
	}, s)
	assert.Equal(t, filepath.Join(wd, "deepmatch.yaml"), s.configPath())
}

func TestLoadSettingsFromEnv(t *testing.T) {
	wd := t.TempDir()
	t.Setenv("DEEPMATCH_DIR", "fixtures")
	t.Setenv("DEEPMATCH_CONFIG", "/etc/deepmatch.yaml")
	t.Setenv("DEEPMATCH_QUERY_TIMEOUT", "5s")

	s, err := LoadSettings(wd)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "fixtures"), s.WorkingDir)
	assert.Equal(t, "/etc/deepmatch.yaml", s.configPath())
	assert.Equal(t, 5*time.Second, s.QueryTimeout)
}

func TestLoadSettingsFromDotEnv(t *testing.T) {
	wd := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(wd, ".env"), []byte("DEEPMATCH_DATABASE_URL=postgres://localhost/test\n"), 0600))
	// Setenv restores the variable once the test is done.
	t.Setenv("DEEPMATCH_DATABASE_URL", "")
	assert.NoError(t, os.Unsetenv("DEEPMATCH_DATABASE_URL"))

	s, err := LoadSettings(wd)
	assert.NoError(t, err)
	assert.Equal(t, "postgres://localhost/test", s.DatabaseURL)
}

func TestLoadSettingsErrors(t *testing.T) {
	t.Setenv("DEEPMATCH_QUERY_TIMEOUT", "soon")

	_, err := LoadSettings(t.TempDir())
	assert.ErrorContains(t, err, "failed to parse settings")
}
