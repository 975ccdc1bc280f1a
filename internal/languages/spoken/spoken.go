// Package spoken defines the closed set of spoken-language codes a
// workshop can be translated into.
package spoken

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Direction is the text direction of a spoken language.
type Direction string

const (
	LeftToRight Direction = "ltr"
	RightToLeft Direction = "rtl"
)

// Code is a two-letter spoken-language code (ISO 639-1 subset).
type Code string

// Default is the spoken language assumed when nothing else is known.
const Default = Code("en")

type info struct {
	name      string
	native    string
	direction Direction
}

// codes holds every supported language in display order.
var codes = []Code{
	"en", "es", "fr", "de", "zh", "ar", "hi", "pt", "ru", "ja",
	"ko", "it", "nl", "sv", "tr", "pl", "vi", "th", "id", "fa",
	"he", "bn", "ta", "te", "mr", "ur", "gu", "pa", "kn", "ml",
	"or", "my", "uk", "cs", "hu", "fi", "da", "no", "el", "ro",
	"sk", "bg", "hr", "sr", "lt", "lv", "et", "sl", "ms", "sw",
}

var table = map[Code]info{
	"en": {"English", "English", LeftToRight},
	"es": {"Spanish", "Español", LeftToRight},
	"fr": {"French", "Français", LeftToRight},
	"de": {"German", "Deutsch", LeftToRight},
	"zh": {"Chinese", "中文", LeftToRight},
	"ar": {"Arabic", "العربية", RightToLeft},
	"hi": {"Hindi", "हिन्दी", LeftToRight},
	"pt": {"Portuguese", "Português", LeftToRight},
	"ru": {"Russian", "Русский", LeftToRight},
	"ja": {"Japanese", "日本語", LeftToRight},
	"ko": {"Korean", "한국어", LeftToRight},
	"it": {"Italian", "Italiano", LeftToRight},
	"nl": {"Dutch", "Nederlands", LeftToRight},
	"sv": {"Swedish", "Svenska", LeftToRight},
	"tr": {"Turkish", "Türkçe", LeftToRight},
	"pl": {"Polish", "Polski", LeftToRight},
	"vi": {"Vietnamese", "Tiếng Việt", LeftToRight},
	"th": {"Thai", "ไทย", LeftToRight},
	"id": {"Indonesian", "Bahasa Indonesia", LeftToRight},
	"fa": {"Persian", "فارسی", RightToLeft},
	"he": {"Hebrew", "עברית", RightToLeft},
	"bn": {"Bengali", "বাংলা", LeftToRight},
	"ta": {"Tamil", "தமிழ்", LeftToRight},
	"te": {"Telugu", "తెలుగు", LeftToRight},
	"mr": {"Marathi", "मराठी", LeftToRight},
	"ur": {"Urdu", "اردو", RightToLeft},
	"gu": {"Gujarati", "ગુજરાતી", LeftToRight},
	"pa": {"Punjabi", "ਪੰਜਾਬੀ", LeftToRight},
	"kn": {"Kannada", "ಕನ್ನಡ", LeftToRight},
	"ml": {"Malayalam", "മലയാളം", LeftToRight},
	"or": {"Odia", "ଓଡ଼ିଆ", LeftToRight},
	"my": {"Burmese", "မြန်မာ", LeftToRight},
	"uk": {"Ukrainian", "Українська", LeftToRight},
	"cs": {"Czech", "Čeština", LeftToRight},
	"hu": {"Hungarian", "Magyar", LeftToRight},
	"fi": {"Finnish", "Suomi", LeftToRight},
	"da": {"Danish", "Dansk", LeftToRight},
	"no": {"Norwegian", "Norsk", LeftToRight},
	"el": {"Greek", "Ελληνικά", LeftToRight},
	"ro": {"Romanian", "Română", LeftToRight},
	"sk": {"Slovak", "Slovenčina", LeftToRight},
	"bg": {"Bulgarian", "Български", LeftToRight},
	"hr": {"Croatian", "Hrvatski", LeftToRight},
	"sr": {"Serbian", "Српски", LeftToRight},
	"lt": {"Lithuanian", "Lietuvių", LeftToRight},
	"lv": {"Latvian", "Latviešu", LeftToRight},
	"et": {"Estonian", "Eesti", LeftToRight},
	"sl": {"Slovenian", "Slovenščina", LeftToRight},
	"ms": {"Malay", "Bahasa Melayu", LeftToRight},
	"sw": {"Swahili", "Kiswahili", LeftToRight},
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

// FromName converts an English language name ("German") to its code.
func FromName(name string) (Code, bool) {
	for c, in := range table {
		if in.name == name {
			return c, true
		}
	}
	return "", false
}

// Name returns the English name of the language.
func (c Code) Name() string { return table[c].name }

// Native returns the language's name in the language itself.
func (c Code) Native() string { return table[c].native }

// Direction returns the text direction.
func (c Code) Direction() Direction { return table[c].direction }

func (c Code) String() string { return string(c) }

// UnmarshalYAML validates the code against the supported set.
func (c *Code) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	code, ok := Parse(s)
	if !ok {
		return fmt.Errorf("unknown spoken language code %q", s)
	}
	*c = code
	return nil
}

// MarshalYAML writes the bare two-letter code.
func (c Code) MarshalYAML() (any, error) {
	return string(c), nil
}
