package lessons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dojo/internal/checker"
	"github.com/abhisek/dojo/internal/config"
	"github.com/abhisek/dojo/internal/router"
	"github.com/abhisek/dojo/internal/screens/mdview"
	"github.com/abhisek/dojo/internal/workshop"
)

func writeLessonDir(t *testing.T, base, name, title string, status workshop.Status) {
	t.Helper()
	dir := filepath.Join(base, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lesson.md"), []byte("# "+title+"\n"), 0o644))
	meta := "title: " + title + "\nstatus: " + string(status) + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lesson.yaml"), []byte(meta), 0o644))
}

func newListScreen(t *testing.T) (*ListScreen, *config.Status, string) {
	t.Helper()
	root := t.TempDir()
	ws := filepath.Join(root, "netminer")
	write := func(rel, content string) {
		path := filepath.Join(ws, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write("defaults.yaml", "spoken_language: en\nprogramming_language: rs\n")
	write("LICENSE", "MIT")
	write(filepath.Join("en", "description.md"), "# About\n")
	write(filepath.Join("en", "workshop.yaml"), "title: Netminer\n")
	write(filepath.Join("en", "rs", "setup.md"), "# Setup\n")

	pairDir := filepath.Join(ws, "en", "rs")
	writeLessonDir(t, pairDir, "01-intro", "Intro", workshop.StatusCompleted)
	writeLessonDir(t, pairDir, "02-fields", "Fields", workshop.StatusNotStarted)
	writeLessonDir(t, pairDir, "03-flags", "Flags", workshop.StatusNotStarted)

	store, err := workshop.Load(root, "netminer")
	require.NoError(t, err)
	status, err := config.LoadStatus(root)
	require.NoError(t, err)

	return New(store, nil, nil, checker.Tools{}, status), status, root
}

func load(t *testing.T, s *ListScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
	require.NoError(t, s.loadErr)
}

func TestAutoAdvanceSkipsCompleted(t *testing.T) {
	s, _, _ := newListScreen(t)
	load(t, s)

	require.Len(t, s.lessons, 3)
	assert.Equal(t, "02-fields", s.lessons[s.selected].Name)
}

func TestRestoresRememberedLesson(t *testing.T) {
	s, status, _ := newListScreen(t)
	status.Lesson = "03-flags"
	load(t, s)

	assert.Equal(t, "03-flags", s.lessons[s.selected].Name)
}

func TestLeaveWorkshopClearsPositionKeepsLanguages(t *testing.T) {
	s, status, root := newListScreen(t)
	load(t, s)

	spk := s.store.SpokenLanguages()[0]
	status.SpokenLanguage = &spk
	status.Workshop = "netminer"
	status.Lesson = "02-fields"
	require.NoError(t, status.Save())

	s.LeaveWorkshop()

	reloaded, err := config.LoadStatus(root)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Workshop)
	assert.Empty(t, reloaded.Lesson)
	require.NotNil(t, reloaded.SpokenLanguage)
	assert.Equal(t, spk, *reloaded.SpokenLanguage)
}

func TestSetupOpensViewer(t *testing.T) {
	s, _, _ := newListScreen(t)
	load(t, s)

	cmd := s.openSetup()
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &mdview.Viewer{}, push.Screen)
}

func TestViewShowsProgressAndBadges(t *testing.T) {
	s, _, _ := newListScreen(t)
	load(t, s)

	out := s.View(100, 30)
	assert.Contains(t, out, "1/3")
	assert.Contains(t, out, "Intro")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "○")
}
