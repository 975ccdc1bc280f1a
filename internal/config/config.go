// Package config persists the user's language preference and the
// last-used workshop state between runs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/dojo/internal/appdir"
	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
)

const configFile = "config.yaml"

// Config is the saved language preference. Either side may be nil,
// meaning "no preference".
type Config struct {
	SpokenLanguage      *spoken.Code      `yaml:"spoken_language"`
	ProgrammingLanguage *programming.Code `yaml:"programming_language"`

	path string
}

// Load reads config.yaml from the config directory. A missing file
// yields an empty config bound to the same path.
func Load() (*Config, error) {
	dir, err := appdir.Config()
	if err != nil {
		return nil, err
	}
	return loadConfig(filepath.Join(dir, configFile))
}

func loadConfig(path string) (*Config, error) {
	c := &Config{path: path}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Save writes the config back where it was loaded from.
func (c *Config) Save() error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
