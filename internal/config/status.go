package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
)

const statusFile = "status.yaml"

// Status is the last-used snapshot restored at startup. It lives inside
// the workshops root so separate installs keep separate histories.
type Status struct {
	SpokenLanguage      *spoken.Code      `yaml:"spoken_language"`
	ProgrammingLanguage *programming.Code `yaml:"programming_language"`
	Workshop            string            `yaml:"workshop,omitempty"`
	Lesson              string            `yaml:"lesson,omitempty"`

	path string
}

// LoadStatus reads status.yaml from the workshops root. A missing file
// yields an empty status bound to the same path.
func LoadStatus(root string) (*Status, error) {
	path := filepath.Join(root, statusFile)
	s := &Status{path: path}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes the status back where it was loaded from.
func (s *Status) Save() error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write status: %w", err)
	}
	return nil
}

// ClearSelection drops the remembered workshop and lesson, keeping the
// language pair. Used when the user backs out to the workshop list.
func (s *Status) ClearSelection() {
	s.Workshop = ""
	s.Lesson = ""
}
