package programming

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Code
		ok   bool
	}{
		{"rs", "rs", true},
		{"RS", "rs", true},
		{"py", "py", true},
		{"cp", "cp", true},
		{"zz", "", false},
		{"rust", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Code
	}{
		{"Python", "py"},
		{"JavaScript", "js"},
		{".Net", "cs"},
		{"C++", "cp"},
		{"F#", "fs"},
		{"Rust", "rs"},
	}
	for _, tt := range tests {
		got, ok := FromName(tt.name)
		if !ok || got != tt.want {
			t.Errorf("FromName(%q) = (%q, %v), want (%q, true)", tt.name, got, ok, tt.want)
		}
	}
	if _, ok := FromName("Brainfuck"); ok {
		t.Error("FromName(Brainfuck) should not resolve")
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		code Code
		ext  string
	}{
		{"py", "py"},
		{"ja", "java"},
		{"cp", "cpp"},
		{"pe", "pl"},
		{"er", "erl"},
		{"el", "ex"},
	}
	for _, tt := range tests {
		if got := tt.code.Extension(); got != tt.ext {
			t.Errorf("%s.Extension() = %q, want %q", tt.code, got, tt.ext)
		}
	}
}

func TestAllCovered(t *testing.T) {
	if len(All()) != 20 {
		t.Fatalf("All() returned %d codes, want 20", len(All()))
	}
	for _, c := range All() {
		if c.Name() == "" || c.Extension() == "" {
			t.Errorf("code %s has incomplete table entry", c)
		}
	}
}
