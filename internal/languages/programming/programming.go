// Package programming defines the closed set of programming-language
// codes a workshop can teach in.
package programming

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Code is a two-letter programming-language code.
type Code string

// Default is the programming language assumed when nothing else is known.
const Default = Code("rs")

type info struct {
	name      string
	extension string
}

// codes holds every supported language in display order.
var codes = []Code{
	"py", "js", "ja", "cs", "cp", "go", "rb", "ph", "ts", "sw",
	"kt", "rs", "sc", "lu", "pe", "hs", "er", "cl", "el", "fs",
}

var table = map[Code]info{
	"py": {"Python", "py"},
	"js": {"JavaScript", "js"},
	"ja": {"Java", "java"},
	"cs": {".Net", "cs"},
	"cp": {"C++", "cpp"},
	"go": {"Go", "go"},
	"rb": {"Ruby", "rb"},
	"ph": {"PHP", "php"},
	"ts": {"TypeScript", "ts"},
	"sw": {"Swift", "swift"},
	"kt": {"Kotlin", "kt"},
	"rs": {"Rust", "rs"},
	"sc": {"Scala", "scala"},
	"lu": {"Lua", "lua"},
	"pe": {"Perl", "pl"},
	"hs": {"Haskell", "hs"},
	"er": {"Erlang", "erl"},
	"cl": {"Clojure", "clj"},
	"el": {"Elixir", "ex"},
	"fs": {"F#", "fs"},
}

// All returns every supported code in display order.
func All() []Code {
	out := make([]Code, len(codes))
	copy(out, codes)
	return out
}

// Parse converts a two-letter code (any case) to a Code. It reports
// false for anything outside the supported set.
func Parse(s string) (Code, bool) {
	s = strings.ToLower(s)
	if len(s) != 2 {
		return "", false
	}
	c := Code(s)
	if _, ok := table[c]; !ok {
		return "", false
	}
	return c, true
}

// FromName converts a language name ("Rust") to its code.
func FromName(name string) (Code, bool) {
	for c, in := range table {
		if in.name == name {
			return c, true
		}
	}
	return "", false
}

// Name returns the display name of the language.
func (c Code) Name() string { return table[c].name }

// Extension returns the source-file extension, without the dot.
func (c Code) Extension() string { return table[c].extension }

func (c Code) String() string { return string(c) }

// UnmarshalYAML validates the code against the supported set.
func (c *Code) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	code, ok := Parse(s)
	if !ok {
		return fmt.Errorf("unknown programming language code %q", s)
	}
	*c = code
	return nil
}

// MarshalYAML writes the bare two-letter code.
func (c Code) MarshalYAML() (any, error) {
	return string(c), nil
}
