package langpick

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
)

func testLanguages() map[spoken.Code][]programming.Code {
	return map[spoken.Code][]programming.Code{
		"en": {"rs", "py"},
		"fr": {"rs"},
	}
}

type committed struct {
	spk         *spoken.Code
	prog        *programming.Code
	saveDefault bool
	called      bool
}

func newTestPicker() (*PickScreen, *committed) {
	var got committed
	commit := func(spk *spoken.Code, prog *programming.Code, saveDefault bool) tea.Cmd {
		got = committed{spk: spk, prog: prog, saveDefault: saveDefault, called: true}
		return nil
	}
	return New(testLanguages(), commit), &got
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyDown} }

func TestPickAnyAnySession(t *testing.T) {
	p, got := newTestPicker()

	p.Update(enter()) // any spoken
	assert.Equal(t, phaseProgramming, p.phase)

	p.Update(enter()) // any programming
	assert.Equal(t, phaseConfirm, p.phase)

	p.Update(enter()) // use for session
	require.True(t, got.called)
	assert.Nil(t, got.spk)
	assert.Nil(t, got.prog)
	assert.False(t, got.saveDefault)
}

func TestPickConcretePairSavedAsDefault(t *testing.T) {
	p, got := newTestPicker()

	p.Update(down()) // en (sorted first after "any")
	p.Update(enter())
	require.Equal(t, phaseProgramming, p.phase)
	require.NotNil(t, p.spokenPick)
	assert.Equal(t, spoken.Code("en"), *p.spokenPick)

	p.Update(down()) // py (sorted before rs)
	p.Update(enter())
	require.Equal(t, phaseConfirm, p.phase)
	require.NotNil(t, p.progPick)
	assert.Equal(t, programming.Code("py"), *p.progPick)

	p.Update(down()) // save as default
	p.Update(enter())
	require.True(t, got.called)
	require.NotNil(t, got.spk)
	require.NotNil(t, got.prog)
	assert.Equal(t, spoken.Code("en"), *got.spk)
	assert.Equal(t, programming.Code("py"), *got.prog)
	assert.True(t, got.saveDefault)
}

func TestProgrammingChoicesFollowSpokenPick(t *testing.T) {
	p, _ := newTestPicker()

	// Pick fr, which only has rs.
	p.Update(down())
	p.Update(down())
	p.Update(enter())
	require.Equal(t, phaseProgramming, p.phase)

	// Items: "Any programming language" + rs.
	assert.Len(t, p.menu.Items, 2)
	assert.Equal(t, "rs", p.menu.Items[1].Label)
}
