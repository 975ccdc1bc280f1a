// Package app wires the screens, router, and chrome into the root
// Bubble Tea program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dojo/internal/checker"
	"github.com/abhisek/dojo/internal/config"
	"github.com/abhisek/dojo/internal/logging"
	"github.com/abhisek/dojo/internal/router"
	"github.com/abhisek/dojo/internal/screen"
	"github.com/abhisek/dojo/internal/screens/lessons"
	"github.com/abhisek/dojo/internal/screens/logview"
	"github.com/abhisek/dojo/internal/screens/welcome"
	"github.com/abhisek/dojo/internal/screens/workshops"
	"github.com/abhisek/dojo/internal/ui/layout"
	"github.com/abhisek/dojo/internal/workshop"
)

// Options carries everything the TUI needs, resolved by the command
// layer before the program starts.
type Options struct {
	Stores []*workshop.Store
	Cfg    *config.Config
	Status *config.Status
	Tools  checker.Tools
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the model with the welcome screen on top, set to
// hand over to the workshop hub.
func newAppModel(opts Options) AppModel {
	hub := func() screen.Screen {
		return workshops.New(opts.Stores, opts.Cfg, opts.Status, opts.Tools)
	}
	return AppModel{
		router: router.New(welcome.New(hub)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+l":
			return m, m.toggleLog()
		case "esc":
			if m.router.Depth() > 1 {
				// Backing out of a workshop forgets the position.
				if ls, ok := m.router.Active().(*lessons.ListScreen); ok {
					ls.LeaveWorkshop()
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			// At the root the screen may use esc itself, e.g. to
			// clear the workshop filter.
			return m, m.router.Update(msg)
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// toggleLog pushes the log screen, or pops it when it is already on
// top.
func (m AppModel) toggleLog() tea.Cmd {
	if _, ok := m.router.Active().(*logview.LogScreen); ok {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	next := logview.New()
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	context := ""
	if cp, ok := active.(screen.ContextProvider); ok {
		context = cp.ContextLine()
	}

	header := layout.RenderHeader(title, context, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	if m.router.Depth() > 1 {
		footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	logging.LogTail().Notify(func() {
		p.Send(logview.RefreshMsg{})
	})
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
