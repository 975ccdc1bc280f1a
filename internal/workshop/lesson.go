package workshop

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
	"github.com/abhisek/dojo/internal/lazy"
)

// Status is the progress state of a lesson. The values are written
// verbatim into lesson.yaml.
type Status string

const (
	StatusNotStarted Status = "NotStarted"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

// UnmarshalYAML rejects values outside the three known states.
func (s *Status) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch Status(raw) {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		*s = Status(raw)
		return nil
	}
	return fmt.Errorf("unknown lesson status %q", raw)
}

// LessonMeta is the lesson.yaml record.
type LessonMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      Status `yaml:"status"`
}

// Lesson is one discovered lesson directory. Its text and metadata load
// lazily; every holder of the pointer shares the same cache state.
type Lesson struct {
	Name        string
	Path        string
	Spoken      spoken.Code
	Programming programming.Code

	text *lazy.Slot[string]
	meta *lazy.Slot[LessonMeta]
}

// LoadLesson builds a Lesson from its directory path, deriving the
// language pair from the trailing {spoken}/{programming}/{name} path
// segments. Both backing files must exist.
func LoadLesson(dir string) (*Lesson, error) {
	segs := strings.Split(filepath.ToSlash(filepath.Clean(dir)), "/")
	if len(segs) < 2 {
		return nil, ErrNoProgrammingLanguage
	}
	prog, ok := programming.Parse(segs[len(segs)-2])
	if !ok {
		return nil, ErrNoProgrammingLanguage
	}
	if len(segs) < 3 {
		return nil, ErrNoSpokenLanguage
	}
	spk, ok := spoken.Parse(segs[len(segs)-3])
	if !ok {
		return nil, ErrNoSpokenLanguage
	}
	return LoadLessonIn(dir, spk, prog)
}

// LoadLessonIn builds a Lesson for a directory discovered under a known
// language pair. Unlike store discovery, loading by path validates the
// two backing files immediately.
func LoadLessonIn(dir string, spk spoken.Code, prog programming.Code) (*Lesson, error) {
	textPath := filepath.Join(dir, lessonTextFile)
	if _, err := os.Stat(textPath); err != nil {
		return nil, &LessonTextMissingError{Path: dir}
	}
	metaPath := filepath.Join(dir, lessonMetaFile)
	if _, err := os.Stat(metaPath); err != nil {
		return nil, &LessonMetadataMissingError{Path: dir}
	}
	return &Lesson{
		Name:        filepath.Base(filepath.Clean(dir)),
		Path:        dir,
		Spoken:      spk,
		Programming: prog,
		text:        lazy.New(textPath, readTextFile),
		meta:        lazy.New(metaPath, readYAMLFile[LessonMeta]),
	}, nil
}

// Text returns the lesson body markdown, loading it on first use.
func (l *Lesson) Text() (string, error) {
	return l.text.Get()
}

// Meta returns the lesson metadata, loading it on first use.
func (l *Lesson) Meta() (LessonMeta, error) {
	return l.meta.Get()
}

// UpdateStatus loads the current metadata, replaces the status, rewrites
// lesson.yaml whole, and updates the cached value in place. The cache is
// written through, never invalidated.
func (l *Lesson) UpdateStatus(st Status) error {
	meta, err := l.meta.Get()
	if err != nil {
		return err
	}
	meta.Status = st
	b, err := yaml.Marshal(meta)
	if err != nil {
		return err
	}
	if err := os.WriteFile(l.meta.Path(), b, 0o644); err != nil {
		return fmt.Errorf("write lesson metadata: %w", err)
	}
	l.meta.Put(meta)
	return nil
}

func readTextFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func readYAMLFile[T any](path string) (T, error) {
	var v T
	b, err := os.ReadFile(path)
	if err != nil {
		return v, err
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}
