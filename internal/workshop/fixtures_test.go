package workshop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const defaultsEnRs = "spoken_language: en\nprogramming_language: rs\n"

// scaffold writes a two-spoken-language workshop under root/name:
// en with rs and py, fr with rs only, one lesson per pair.
func scaffold(t *testing.T, root, name string) {
	t.Helper()
	base := filepath.Join(root, name)
	writeFile(t, filepath.Join(base, "defaults.yaml"), defaultsEnRs)
	writeFile(t, filepath.Join(base, "LICENSE"), "MIT license text")

	writeFile(t, filepath.Join(base, "en", "description.md"), "# English description")
	writeFile(t, filepath.Join(base, "en", "workshop.yaml"), workshopYAML("English Title"))
	writeFile(t, filepath.Join(base, "fr", "description.md"), "# Description française")
	writeFile(t, filepath.Join(base, "fr", "workshop.yaml"), workshopYAML("Titre français"))

	writeFile(t, filepath.Join(base, "en", "rs", "setup.md"), "setup en/rs")
	writeFile(t, filepath.Join(base, "en", "py", "setup.md"), "setup en/py")
	writeFile(t, filepath.Join(base, "fr", "rs", "setup.md"), "setup fr/rs")

	writeLesson(t, filepath.Join(base, "en", "rs", "intro"), "Intro", "NotStarted")
	writeLesson(t, filepath.Join(base, "en", "py", "intro"), "Intro", "NotStarted")
	writeLesson(t, filepath.Join(base, "fr", "rs", "intro"), "Intro", "NotStarted")
}

func writeLesson(t *testing.T, dir, title, status string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, "lesson.md"), "# "+title+"\n\nbody\n")
	writeFile(t, filepath.Join(dir, "lesson.yaml"),
		"title: "+title+"\ndescription: about "+title+"\nstatus: "+status+"\n")
}

func workshopYAML(title string) string {
	return "title: " + title + `
authors:
  - Ada
copyright: 2026 Ada
license: MIT
homepage: https://example.com
difficulty: 2
`
}

func loadScaffold(t *testing.T) *Store {
	t.Helper()
	root := t.TempDir()
	scaffold(t, root, "netminer")
	st, err := Load(root, "netminer")
	require.NoError(t, err)
	return st
}

func ptr[T any](v T) *T { return &v }
