package workshops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dojo/internal/checker"
	"github.com/abhisek/dojo/internal/config"
	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
	"github.com/abhisek/dojo/internal/router"
	"github.com/abhisek/dojo/internal/screens/lessons"
	"github.com/abhisek/dojo/internal/workshop"
)

// writeWorkshop lays out a minimal loadable workshop with the given
// spoken → programming language tree.
func writeWorkshop(t *testing.T, root, name string, langs map[string][]string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	write := func(rel, content string) {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	first := ""
	for spk := range langs {
		if first == "" || spk < first {
			first = spk
		}
	}
	write("defaults.yaml", "spoken_language: "+first+"\nprogramming_language: "+langs[first][0]+"\n")
	write("LICENSE", "MIT")
	for spk, progs := range langs {
		write(filepath.Join(spk, "description.md"), "# "+name+"\n\nLearn things.\n")
		write(filepath.Join(spk, "workshop.yaml"),
			"title: "+strings.ToUpper(name[:1])+name[1:]+"\ndifficulty: 2\nhomepage: https://example.com/"+name+"\n")
		for _, prog := range progs {
			write(filepath.Join(spk, prog, "setup.md"), "# Setup\n")
		}
	}
}

func newTestHub(t *testing.T) *HubScreen {
	t.Helper()
	root := t.TempDir()
	writeWorkshop(t, root, "netminer", map[string][]string{
		"en": {"py", "rs"},
		"fr": {"rs"},
	})
	writeWorkshop(t, root, "shellfu", map[string][]string{
		"en": {"py"},
	})

	stores, err := workshop.LoadAll(root)
	require.NoError(t, err)
	require.Len(t, stores, 2)

	t.Setenv("DOJO_CONFIG_DIR", t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)
	status, err := config.LoadStatus(root)
	require.NoError(t, err)

	return New(stores, cfg, status, checker.Tools{})
}

func names(stores []*workshop.Store) []string {
	out := make([]string, 0, len(stores))
	for _, st := range stores {
		out = append(out, st.Name)
	}
	return out
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func TestAllVisibleWithoutSelection(t *testing.T) {
	h := newTestHub(t)
	assert.Equal(t, []string{"netminer", "shellfu"}, names(h.visible))
	assert.Equal(t, "any · any", h.ContextLine())
}

func TestLanguageSelectionFiltersList(t *testing.T) {
	h := newTestHub(t)

	fr := spoken.Code("fr")
	h.status.SpokenLanguage = &fr
	h.refresh()
	assert.Equal(t, []string{"netminer"}, names(h.visible))

	h.status.SpokenLanguage = nil
	rs := programming.Code("rs")
	h.status.ProgrammingLanguage = &rs
	h.refresh()
	assert.Equal(t, []string{"netminer"}, names(h.visible))
}

func TestSessionSelectionShadowsDefault(t *testing.T) {
	h := newTestHub(t)

	en := spoken.Code("en")
	fr := spoken.Code("fr")
	h.cfg.SpokenLanguage = &en
	h.status.SpokenLanguage = &fr

	spk, _ := h.selection()
	require.NotNil(t, spk)
	assert.Equal(t, fr, *spk)
	assert.Equal(t, "fr · any", h.ContextLine())
}

func TestNameFilter(t *testing.T) {
	h := newTestHub(t)

	h.Update(key('/'))
	require.True(t, h.filtering)
	for _, r := range "shell" {
		h.Update(key(r))
	}
	assert.Equal(t, []string{"shellfu"}, names(h.visible))

	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.False(t, h.filtering)
	assert.Equal(t, []string{"shellfu"}, names(h.visible))

	h.Update(key('/'))
	h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.False(t, h.filtering)
	assert.Equal(t, []string{"netminer", "shellfu"}, names(h.visible))
}

func TestEnterOpensLessons(t *testing.T) {
	h := newTestHub(t)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &lessons.ListScreen{}, push.Screen)
}

func TestCommitLanguagesSavesSessionAndDefault(t *testing.T) {
	h := newTestHub(t)

	en := spoken.Code("en")
	py := programming.Code("py")
	cmd := h.commitLanguages(&en, &py, true)
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())

	require.NotNil(t, h.status.SpokenLanguage)
	assert.Equal(t, en, *h.status.SpokenLanguage)
	require.NotNil(t, h.cfg.ProgrammingLanguage)
	assert.Equal(t, py, *h.cfg.ProgrammingLanguage)

	// Both files round-trip from disk.
	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.SpokenLanguage)
	assert.Equal(t, en, *cfg.SpokenLanguage)

	assert.Equal(t, "en · py", h.ContextLine())
}

func TestCommitSessionOnlyLeavesDefaultAlone(t *testing.T) {
	h := newTestHub(t)

	en := spoken.Code("en")
	cmd := h.commitLanguages(&en, nil, false)
	require.NotNil(t, cmd)
	cmd()

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.SpokenLanguage)
	assert.Nil(t, cfg.ProgrammingLanguage)
}

func TestRestoresLastWorkshopSelection(t *testing.T) {
	root := t.TempDir()
	writeWorkshop(t, root, "netminer", map[string][]string{"en": {"rs"}})
	writeWorkshop(t, root, "shellfu", map[string][]string{"en": {"py"}})

	stores, err := workshop.LoadAll(root)
	require.NoError(t, err)

	t.Setenv("DOJO_CONFIG_DIR", t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)
	status, err := config.LoadStatus(root)
	require.NoError(t, err)
	status.Workshop = "shellfu"

	h := New(stores, cfg, status, checker.Tools{})
	require.Less(t, h.selected, len(h.visible))
	assert.Equal(t, "shellfu", h.visible[h.selected].Name)
}

func TestDetailViewShowsMetadata(t *testing.T) {
	h := newTestHub(t)

	out := h.View(100, 30)
	assert.Contains(t, out, "Netminer")
	assert.Contains(t, out, "Learn things.")
	assert.Contains(t, out, "★★")
}

func TestTabTogglesFocus(t *testing.T) {
	h := newTestHub(t)

	require.Equal(t, focusList, h.focus)
	h.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, focusDetail, h.focus)
	h.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, focusList, h.focus)
}
