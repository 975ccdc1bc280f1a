package workshop

import (
	"errors"
	"fmt"

	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
)

// Errors for aspect maps that turn out empty at access time.
var (
	ErrNoDescriptions      = errors.New("workshop has no descriptions")
	ErrNoMetadata          = errors.New("workshop has no metadata")
	ErrNoSetupInstructions = errors.New("workshop has no setup instructions")
	ErrNoLessons           = errors.New("workshop has no lessons")
)

// Errors for lesson paths too shallow to carry a language pair.
var (
	ErrNoSpokenLanguage      = errors.New("no spoken language in lesson path")
	ErrNoProgrammingLanguage = errors.New("no programming language in lesson path")
)

// NotFoundError reports a workshop directory that does not exist under
// the workshops root.
type NotFoundError struct {
	Workshop string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("workshop %q not found", e.Workshop)
}

// DefaultsNotFoundError reports a workshop without a defaults.yaml.
type DefaultsNotFoundError struct {
	Workshop string
}

func (e *DefaultsNotFoundError) Error() string {
	return fmt.Sprintf("workshop %q has no defaults.yaml", e.Workshop)
}

// LicenseNotFoundError reports a workshop without a LICENSE file.
type LicenseNotFoundError struct {
	Workshop string
}

func (e *LicenseNotFoundError) Error() string {
	return fmt.Sprintf("workshop %q has no LICENSE file", e.Workshop)
}

// NoProgrammingLanguagesError reports a spoken language that resolved
// successfully but has no programming languages under it.
type NoProgrammingLanguagesError struct {
	Spoken spoken.Code
}

func (e *NoProgrammingLanguagesError) Error() string {
	return fmt.Sprintf("workshop has no programming languages for spoken language %q", e.Spoken)
}

// SpokenDirNotFoundError reports a missing spoken-language directory
// where one is required on disk.
type SpokenDirNotFoundError struct {
	Spoken spoken.Code
}

func (e *SpokenDirNotFoundError) Error() string {
	return fmt.Sprintf("workshop data dir for spoken language %q not found", e.Spoken)
}

// ProgrammingDirNotFoundError reports a missing programming-language
// directory where one is required on disk.
type ProgrammingDirNotFoundError struct {
	Programming programming.Code
}

func (e *ProgrammingDirNotFoundError) Error() string {
	return fmt.Sprintf("workshop data dir for programming language %q not found", e.Programming)
}

// LessonTextMissingError reports a lesson directory without a lesson.md.
type LessonTextMissingError struct {
	Path string
}

func (e *LessonTextMissingError) Error() string {
	return fmt.Sprintf("lesson text file missing in %s", e.Path)
}

// LessonMetadataMissingError reports a lesson directory without a
// lesson.yaml.
type LessonMetadataMissingError struct {
	Path string
}

func (e *LessonMetadataMissingError) Error() string {
	return fmt.Sprintf("lesson metadata file missing in %s", e.Path)
}
