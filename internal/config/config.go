package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Version int     `yaml:"version" validate:"eq=1"`
	Package Package `yaml:"package"`
	Cases   []Case  `yaml:"cases" validate:"required,unique=Name,dive"`
}

type Package struct {
	Path string `yaml:"path"`
}

type Case struct {
	Name     string   `yaml:"name" validate:"required"`
	Actual   Actual   `yaml:"actual"`
	Expected string   `yaml:"expected" validate:"required"`
	Ignore   []string `yaml:"ignore"`
	Message  string   `yaml:"message"`
}

// Actual names where the actual value of a case comes from. Exactly one of
// the fields is set.
type Actual struct {
	File  string `yaml:"file" validate:"required_without=Query,excluded_with=Query"`
	Query string `yaml:"query" validate:"required_without=File,excluded_with=File"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func Read(configPath string) (*Config, error) {
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read config file "%s": %w`, configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(fileData, &config); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal config file "%s": %w`, configPath, err)
	}

	if err := validate.Struct(&config); err != nil {
		return nil, fmt.Errorf(`invalid config file "%s": %w`, configPath, err)
	}

	return &config, nil
}

// Resolve returns `filePath` relative to `dir` unless it is absolute.
func Resolve(dir string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filePath
	}

	return filepath.Join(dir, filePath)
}

// HasQueries tells whether any case reads its actual value from the database.
func (c *Config) HasQueries() bool {
	for _, cs := range c.Cases {
		if cs.Actual.Query != "" {
			return true
		}
	}

	return false
}
