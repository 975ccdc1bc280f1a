package workshop

import (
	"maps"
	"slices"

	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
	"github.com/abhisek/dojo/internal/lazy"
)

// Defaults is the defaults.yaml record: the language pair a workshop
// falls back to when the user's selection is absent or unsupported.
type Defaults struct {
	SpokenLanguage      spoken.Code      `yaml:"spoken_language"`
	ProgrammingLanguage programming.Code `yaml:"programming_language"`
}

// Meta is the workshop.yaml record.
type Meta struct {
	Title      string   `yaml:"title"`
	Authors    []string `yaml:"authors"`
	Copyright  string   `yaml:"copyright"`
	License    string   `yaml:"license"`
	Homepage   string   `yaml:"homepage"`
	Difficulty int      `yaml:"difficulty"`
}

// Store is the in-memory graph for one installed workshop. Discovery
// fills the maps with unloaded slots; content loads on first access and
// stays cached. The maps are never mutated after Load, so a Store is
// safe to share across goroutines.
type Store struct {
	Name     string
	Path     string
	Defaults Defaults

	descriptions map[spoken.Code]*lazy.Slot[string]
	metadata     map[spoken.Code]*lazy.Slot[Meta]
	setup        map[spoken.Code]map[programming.Code]*lazy.Slot[string]
	lessons      map[spoken.Code]map[programming.Code][]*lazy.Slot[*Lesson]
	license      *lazy.Slot[string]
	languages    map[spoken.Code][]programming.Code
}

// Description returns the workshop description for the requested spoken
// language, applying the fallback rules. nil means "use the default".
func (s *Store) Description(requested *spoken.Code) (string, error) {
	key, ok := resolve(s.descriptions, requested, s.Defaults.SpokenLanguage)
	if !ok {
		return "", ErrNoDescriptions
	}
	return s.descriptions[key].Get()
}

// Metadata returns the workshop metadata for the requested spoken
// language, applying the fallback rules.
func (s *Store) Metadata(requested *spoken.Code) (Meta, error) {
	key, ok := resolve(s.metadata, requested, s.Defaults.SpokenLanguage)
	if !ok {
		return Meta{}, ErrNoMetadata
	}
	return s.metadata[key].Get()
}

// SetupInstructions returns the setup markdown for the requested
// language pair. The spoken language resolves against the outer map,
// then the programming language against the inner map it selected.
func (s *Store) SetupInstructions(spk *spoken.Code, prog *programming.Code) (string, error) {
	sk, ok := resolve(s.setup, spk, s.Defaults.SpokenLanguage)
	if !ok {
		return "", ErrNoSetupInstructions
	}
	inner := s.setup[sk]
	pk, ok := resolve(inner, prog, s.Defaults.ProgrammingLanguage)
	if !ok {
		return "", &NoProgrammingLanguagesError{Spoken: sk}
	}
	return inner[pk].Get()
}

// Lessons returns the workshop's lessons for the requested language
// pair in discovery order, loading each entry on first use. A lesson
// directory that lost its backing files since discovery surfaces here.
func (s *Store) Lessons(spk *spoken.Code, prog *programming.Code) ([]*Lesson, error) {
	sk, ok := resolve(s.lessons, spk, s.Defaults.SpokenLanguage)
	if !ok {
		return nil, ErrNoLessons
	}
	inner := s.lessons[sk]
	pk, ok := resolve(inner, prog, s.Defaults.ProgrammingLanguage)
	if !ok {
		return nil, &NoProgrammingLanguagesError{Spoken: sk}
	}
	slots := inner[pk]
	out := make([]*Lesson, 0, len(slots))
	for _, slot := range slots {
		lesson, err := slot.Get()
		if err != nil {
			return nil, err
		}
		out = append(out, lesson)
	}
	return out, nil
}

// License returns the workshop's license text.
func (s *Store) License() (string, error) {
	return s.license.Get()
}

// Languages returns the spoken → programming compatibility map derived
// at discovery time.
func (s *Store) Languages() map[spoken.Code][]programming.Code {
	out := make(map[spoken.Code][]programming.Code, len(s.languages))
	for k, v := range s.languages {
		out[k] = slices.Clone(v)
	}
	return out
}

// SpokenLanguages returns the sorted spoken languages the workshop is
// translated into.
func (s *Store) SpokenLanguages() []spoken.Code {
	return slices.Sorted(maps.Keys(s.languages))
}

// IsSelected reports whether the workshop matches a language selection.
// nil means "any" for either side.
func (s *Store) IsSelected(spk *spoken.Code, prog *programming.Code) bool {
	if spk == nil && prog == nil {
		return true
	}
	if spk != nil {
		progs, ok := s.languages[*spk]
		if !ok {
			return false
		}
		if prog == nil {
			return true
		}
		return slices.Contains(progs, *prog)
	}
	for _, progs := range s.languages {
		if slices.Contains(progs, *prog) {
			return true
		}
	}
	return false
}
