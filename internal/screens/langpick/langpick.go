// Package langpick lets the user narrow the workshop list to a spoken
// and programming language pair. Either side can stay "any".
package langpick

import (
	"fmt"
	"maps"
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
	"github.com/abhisek/dojo/internal/screen"
	"github.com/abhisek/dojo/internal/ui/components"
	"github.com/abhisek/dojo/internal/ui/layout"
	"github.com/abhisek/dojo/internal/ui/theme"
)

// Commit applies the chosen pair. saveDefault additionally persists the
// pair as the user's config default.
type Commit func(spk *spoken.Code, prog *programming.Code, saveDefault bool) tea.Cmd

type phase int

const (
	phaseSpoken phase = iota
	phaseProgramming
	phaseConfirm
)

// PickScreen walks through spoken language, programming language, and a
// final save-as-default choice.
type PickScreen struct {
	languages map[spoken.Code][]programming.Code
	commit    Commit

	phase phase
	menu  components.Menu

	spokenPick *spoken.Code
	progPick   *programming.Code
}

var _ screen.Screen = (*PickScreen)(nil)

// New creates a picker over the available language pairs.
func New(languages map[spoken.Code][]programming.Code, commit Commit) *PickScreen {
	p := &PickScreen{
		languages: languages,
		commit:    commit,
	}
	p.menu = p.spokenMenu()
	return p
}

func (p *PickScreen) Init() tea.Cmd {
	return nil
}

func (p *PickScreen) Title() string {
	return "Languages"
}

func (p *PickScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Choose"},
	}
}

func (p *PickScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickScreen) spokenMenu() components.Menu {
	codes := slices.Sorted(maps.Keys(p.languages))

	items := []components.MenuItem{{
		Label: "Any spoken language",
		Action: func() tea.Cmd {
			p.advanceSpoken(nil)
			return nil
		},
	}}
	for _, code := range codes {
		code := code
		detail := code.Name()
		if native := code.Native(); native != "" && native != detail {
			detail += " · " + native
		}
		if code.Direction() == spoken.RightToLeft {
			detail += " (RTL)"
		}
		items = append(items, components.MenuItem{
			Label:  string(code),
			Detail: detail,
			Action: func() tea.Cmd {
				p.advanceSpoken(&code)
				return nil
			},
		})
	}

	m := components.NewMenu(items)
	m.MaxVisible = 14
	return m
}

func (p *PickScreen) advanceSpoken(code *spoken.Code) {
	p.spokenPick = code
	p.phase = phaseProgramming
	p.menu = p.programmingMenu()
}

func (p *PickScreen) programmingMenu() components.Menu {
	var codes []programming.Code
	if p.spokenPick != nil {
		codes = slices.Clone(p.languages[*p.spokenPick])
		slices.Sort(codes)
	} else {
		set := map[programming.Code]struct{}{}
		for _, progs := range p.languages {
			for _, c := range progs {
				set[c] = struct{}{}
			}
		}
		codes = slices.Sorted(maps.Keys(set))
	}

	items := []components.MenuItem{{
		Label: "Any programming language",
		Action: func() tea.Cmd {
			p.advanceProgramming(nil)
			return nil
		},
	}}
	for _, code := range codes {
		code := code
		items = append(items, components.MenuItem{
			Label:  string(code),
			Detail: code.Name(),
			Action: func() tea.Cmd {
				p.advanceProgramming(&code)
				return nil
			},
		})
	}

	m := components.NewMenu(items)
	m.MaxVisible = 14
	return m
}

func (p *PickScreen) advanceProgramming(code *programming.Code) {
	p.progPick = code
	p.phase = phaseConfirm
	p.menu = components.NewMenu([]components.MenuItem{
		{
			Label: "Use for this session",
			Action: func() tea.Cmd {
				return p.commit(p.spokenPick, p.progPick, false)
			},
		},
		{
			Label:  "Save as default",
			Detail: "written to config.yaml",
			Action: func() tea.Cmd {
				return p.commit(p.spokenPick, p.progPick, true)
			},
		},
	})
}

func (p *PickScreen) View(width, height int) string {
	var prompt string
	switch p.phase {
	case phaseSpoken:
		prompt = "Which spoken language do you want content in?"
	case phaseProgramming:
		prompt = "Which programming language do you want to practice?"
	case phaseConfirm:
		prompt = fmt.Sprintf("Filter on %s?", p.describePick())
	}

	content := theme.Emphasis.Render(prompt) + "\n\n" + p.menu.View()

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *PickScreen) describePick() string {
	spk := "any spoken language"
	if p.spokenPick != nil {
		spk = p.spokenPick.Name()
	}
	prog := "any programming language"
	if p.progPick != nil {
		prog = p.progPick.Name()
	}
	return spk + " + " + prog
}
