// Package workshops is the main screen: the installed workshop list
// with a detail pane, language filtering, and entry into lessons.
package workshops

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/charmbracelet/log"
	"github.com/pkg/browser"

	"github.com/abhisek/dojo/internal/checker"
	"github.com/abhisek/dojo/internal/config"
	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
	"github.com/abhisek/dojo/internal/router"
	"github.com/abhisek/dojo/internal/screen"
	"github.com/abhisek/dojo/internal/screens/langpick"
	"github.com/abhisek/dojo/internal/screens/lessons"
	"github.com/abhisek/dojo/internal/screens/mdview"
	"github.com/abhisek/dojo/internal/ui/components"
	"github.com/abhisek/dojo/internal/ui/layout"
	"github.com/abhisek/dojo/internal/workshop"
)

type focusArea int

const (
	focusList focusArea = iota
	focusDetail
)

// HubScreen shows every installed workshop matching the active language
// selection.
type HubScreen struct {
	all    []*workshop.Store
	cfg    *config.Config
	status *config.Status
	tools  checker.Tools

	visible  []*workshop.Store
	selected int
	focus    focusArea

	detailScroll int
	detailMax    int

	filter    components.FilterInput
	filtering bool
}

var _ screen.Screen = (*HubScreen)(nil)

// New creates the hub over the loaded stores.
func New(stores []*workshop.Store, cfg *config.Config, status *config.Status, tools checker.Tools) *HubScreen {
	h := &HubScreen{
		all:    stores,
		cfg:    cfg,
		status: status,
		tools:  tools,
		filter: components.NewFilterInput("workshop name"),
	}
	h.refresh()
	// Restore the last-used workshop from the saved status.
	for i, st := range h.visible {
		if st.Name == status.Workshop {
			h.selected = i
			break
		}
	}
	return h
}

func (h *HubScreen) Init() tea.Cmd {
	return nil
}

func (h *HubScreen) Title() string {
	return "Workshops"
}

// selection returns the effective language pair: the session choice
// when set, otherwise the saved default.
func (h *HubScreen) selection() (*spoken.Code, *programming.Code) {
	spk := h.status.SpokenLanguage
	if spk == nil {
		spk = h.cfg.SpokenLanguage
	}
	prog := h.status.ProgrammingLanguage
	if prog == nil {
		prog = h.cfg.ProgrammingLanguage
	}
	return spk, prog
}

func (h *HubScreen) ContextLine() string {
	spk, prog := h.selection()
	left, right := "any", "any"
	if spk != nil {
		left = string(*spk)
	}
	if prog != nil {
		right = string(*prog)
	}
	return left + " · " + right
}

func (h *HubScreen) KeyHints() []layout.KeyHint {
	if h.filtering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Lessons"},
		{Key: "/", Description: "Filter"},
		{Key: "f", Description: "Languages"},
		{Key: "l", Description: "License"},
		{Key: "w", Description: "Homepage"},
	}
}

// refresh recomputes the visible list from the language selection and
// the name filter.
func (h *HubScreen) refresh() {
	spk, prog := h.selection()
	needle := strings.ToLower(h.filter.Value())

	h.visible = h.visible[:0]
	for _, st := range h.all {
		if !st.IsSelected(spk, prog) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(st.Name), needle) {
			continue
		}
		h.visible = append(h.visible, st)
	}
	if h.selected >= len(h.visible) {
		h.selected = 0
	}
	h.detailScroll = 0
}

func (h *HubScreen) current() *workshop.Store {
	if h.selected < len(h.visible) {
		return h.visible[h.selected]
	}
	return nil
}

func (h *HubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	if h.filtering {
		switch kmsg.String() {
		case "enter":
			h.filtering = false
			h.filter.Blur()
			return h, nil
		case "esc":
			h.filtering = false
			h.filter.Blur()
			h.filter.Reset()
			h.refresh()
			return h, nil
		}
		var cmd tea.Cmd
		h.filter, cmd = h.filter.Update(msg)
		h.refresh()
		return h, cmd
	}

	switch kmsg.String() {
	case "tab":
		if h.focus == focusList {
			h.focus = focusDetail
		} else {
			h.focus = focusList
		}
	case "up", "k":
		if h.focus == focusDetail {
			h.detailScroll--
			if h.detailScroll < 0 {
				h.detailScroll = 0
			}
		} else if h.selected > 0 {
			h.selected--
			h.detailScroll = 0
		}
	case "down", "j":
		if h.focus == focusDetail {
			h.detailScroll++
			if h.detailScroll > h.detailMax {
				h.detailScroll = h.detailMax
			}
		} else if h.selected < len(h.visible)-1 {
			h.selected++
			h.detailScroll = 0
		}
	case "enter":
		return h, h.openLessons()
	case "/":
		h.filtering = true
		h.focus = focusList
		return h, h.filter.Focus()
	case "f":
		return h, h.openLanguagePicker()
	case "l":
		return h, h.openLicense()
	case "w":
		return h, h.openHomepage()
	}
	return h, nil
}

func (h *HubScreen) openLessons() tea.Cmd {
	st := h.current()
	if st == nil {
		return nil
	}
	spk, prog := h.selection()
	next := lessons.New(st, spk, prog, h.tools, h.status)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (h *HubScreen) openLanguagePicker() tea.Cmd {
	next := langpick.New(workshop.AllLanguages(h.all), h.commitLanguages)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// commitLanguages applies a picker result: always the session state,
// optionally the saved default too.
func (h *HubScreen) commitLanguages(spk *spoken.Code, prog *programming.Code, saveDefault bool) tea.Cmd {
	h.status.SpokenLanguage = spk
	h.status.ProgrammingLanguage = prog
	if err := h.status.Save(); err != nil {
		log.Warn("save language selection", "err", err)
	}
	if saveDefault {
		h.cfg.SpokenLanguage = spk
		h.cfg.ProgrammingLanguage = prog
		if err := h.cfg.Save(); err != nil {
			log.Warn("save language default", "err", err)
		}
	}
	h.refresh()
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

func (h *HubScreen) openLicense() tea.Cmd {
	st := h.current()
	if st == nil {
		return nil
	}
	text, err := st.License()
	if err != nil {
		log.Warn("load license", "workshop", st.Name, "err", err)
		return nil
	}
	next := mdview.NewPlain("License", text)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (h *HubScreen) openHomepage() tea.Cmd {
	st := h.current()
	if st == nil {
		return nil
	}
	spk, _ := h.selection()
	meta, err := st.Metadata(spk)
	if err != nil || meta.Homepage == "" {
		return nil
	}
	url := meta.Homepage
	return func() tea.Msg {
		if err := browser.OpenURL(url); err != nil {
			log.Warn("open homepage", "url", url, "err", err)
		}
		return nil
	}
}
