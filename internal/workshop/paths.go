package workshop

import (
	"os"
	"path/filepath"

	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
)

// File names making up the on-disk workshop layout. The tree shape is
// the wire format; there is no index file.
const (
	defaultsFile    = "defaults.yaml"
	licenseFile     = "LICENSE"
	descriptionFile = "description.md"
	metadataFile    = "workshop.yaml"
	setupFile       = "setup.md"
	lessonTextFile  = "lesson.md"
	lessonMetaFile  = "lesson.yaml"
	depsScript      = "deps.py"
	checkScript     = "check.py"
)

// DepsScriptPath returns the dependency-check script path for a
// resolved language pair. The script is executed, never parsed, so only
// the directories are verified here.
func (s *Store) DepsScriptPath(spk spoken.Code, prog programming.Code) (string, error) {
	dir, err := s.languageDir(spk, prog)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, depsScript), nil
}

// CheckScriptPath returns the solution-check script path for a resolved
// (spoken, programming, lesson) triple.
func (s *Store) CheckScriptPath(spk spoken.Code, prog programming.Code, lesson string) (string, error) {
	dir, err := s.LessonDir(spk, prog, lesson)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, checkScript), nil
}

// LessonDir returns the directory of one lesson for a resolved triple.
func (s *Store) LessonDir(spk spoken.Code, prog programming.Code, lesson string) (string, error) {
	dir, err := s.languageDir(spk, prog)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, lesson), nil
}

func (s *Store) languageDir(spk spoken.Code, prog programming.Code) (string, error) {
	sdir := filepath.Join(s.Path, spk.String())
	if fi, err := os.Stat(sdir); err != nil || !fi.IsDir() {
		return "", &SpokenDirNotFoundError{Spoken: spk}
	}
	pdir := filepath.Join(sdir, prog.String())
	if fi, err := os.Stat(pdir); err != nil || !fi.IsDir() {
		return "", &ProgrammingDirNotFoundError{Programming: prog}
	}
	return pdir, nil
}
