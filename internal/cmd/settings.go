package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

const envFile = ".env"

type Settings struct {
	WorkingDir   string        `env:"DEEPMATCH_DIR"`
	ConfigFile   string        `env:"DEEPMATCH_CONFIG" envDefault:"deepmatch.yaml"`
	QueryTimeout time.Duration `env:"DEEPMATCH_QUERY_TIMEOUT" envDefault:"30s"`
	DatabaseURL  string        `env:"DEEPMATCH_DATABASE_URL"`
	Diff         bool          `env:"DEEPMATCH_DIFF"`
}

// LoadSettings reads the settings from the environment. Variables missing
// from the environment are first loaded from a `.env` file in `wd` if one
// exists. The working directory defaults to `wd`.
func LoadSettings(wd string) (Settings, error) {
	if err := godotenv.Load(filepath.Join(wd, envFile)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf(`failed to load "%s": %w`, envFile, err)
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf(`failed to parse settings: %w`, err)
	}

	if s.WorkingDir == "" {
		s.WorkingDir = wd
	} else if !filepath.IsAbs(s.WorkingDir) {
		s.WorkingDir = filepath.Join(wd, s.WorkingDir)
	}

	return s, nil
}

func (s Settings) configPath() string {
	if filepath.IsAbs(s.ConfigFile) {
		return s.ConfigFile
	}

	return filepath.Join(s.WorkingDir, s.ConfigFile)
}
