// Package lessons lists the lessons of one workshop for the active
// language pair.
package lessons

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/charmbracelet/log"

	"github.com/abhisek/dojo/internal/checker"
	"github.com/abhisek/dojo/internal/config"
	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
	"github.com/abhisek/dojo/internal/router"
	"github.com/abhisek/dojo/internal/screen"
	lessonscreen "github.com/abhisek/dojo/internal/screens/lesson"
	"github.com/abhisek/dojo/internal/screens/mdview"
	"github.com/abhisek/dojo/internal/ui/components"
	"github.com/abhisek/dojo/internal/ui/layout"
	"github.com/abhisek/dojo/internal/ui/theme"
	"github.com/abhisek/dojo/internal/workshop"
)

type loadedMsg struct {
	lessons []*workshop.Lesson
	err     error
}

// ListScreen shows a workshop's lessons with their progress state.
// Lesson pointers are shared with the detail screen, so a status change
// there shows up here on the next render.
type ListScreen struct {
	store  *workshop.Store
	spk    *spoken.Code
	prog   *programming.Code
	tools  checker.Tools
	status *config.Status

	loading  bool
	loadErr  error
	lessons  []*workshop.Lesson
	selected int
}

var _ screen.Screen = (*ListScreen)(nil)

// New creates the lesson list for a workshop under the given selection.
func New(store *workshop.Store, spk *spoken.Code, prog *programming.Code, tools checker.Tools, status *config.Status) *ListScreen {
	return &ListScreen{
		store:   store,
		spk:     spk,
		prog:    prog,
		tools:   tools,
		status:  status,
		loading: true,
	}
}

func (s *ListScreen) Init() tea.Cmd {
	store, spk, prog := s.store, s.spk, s.prog
	return func() tea.Msg {
		lessons, err := store.Lessons(spk, prog)
		if err != nil {
			return loadedMsg{err: err}
		}
		for _, l := range lessons {
			if _, err := l.Meta(); err != nil {
				return loadedMsg{err: err}
			}
		}
		return loadedMsg{lessons: lessons}
	}
}

func (s *ListScreen) Title() string {
	return "Lessons"
}

func (s *ListScreen) ContextLine() string {
	if len(s.lessons) > 0 {
		return fmt.Sprintf("%s · %s · %s", s.store.Name, s.lessons[0].Spoken, s.lessons[0].Programming)
	}
	return s.store.Name
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "s", Description: "Setup"},
	}
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		s.loadErr = msg.err
		s.lessons = msg.lessons
		s.selected = s.initialSelection()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.lessons)-1 {
				s.selected++
			}
		case "enter":
			return s, s.openSelected()
		case "s":
			return s, s.openSetup()
		}
	}
	return s, nil
}

// initialSelection restores the remembered lesson, or suggests the
// first one not yet completed.
func (s *ListScreen) initialSelection() int {
	for i, l := range s.lessons {
		if l.Name == s.status.Lesson {
			return i
		}
	}
	for i, l := range s.lessons {
		if s.statusOf(l) != workshop.StatusCompleted {
			return i
		}
	}
	return 0
}

// LeaveWorkshop drops the remembered position when the user backs out
// to the workshop list. The language pair stays.
func (s *ListScreen) LeaveWorkshop() {
	s.status.ClearSelection()
	if err := s.status.Save(); err != nil {
		log.Warn("save status", "err", err)
	}
}

func (s *ListScreen) openSelected() tea.Cmd {
	if s.loading || s.loadErr != nil || s.selected >= len(s.lessons) {
		return nil
	}
	lesson := s.lessons[s.selected]
	next := lessonscreen.New(lesson, s.store, s.tools, s.status)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *ListScreen) openSetup() tea.Cmd {
	text, err := s.store.SetupInstructions(s.spk, s.prog)
	if err != nil {
		s.loadErr = err
		return nil
	}
	next := mdview.New("Setup", text)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *ListScreen) statusOf(l *workshop.Lesson) workshop.Status {
	meta, err := l.Meta()
	if err != nil {
		return workshop.StatusNotStarted
	}
	return meta.Status
}

func (s *ListScreen) completedCount() int {
	n := 0
	for _, l := range s.lessons {
		if s.statusOf(l) == workshop.StatusCompleted {
			n++
		}
	}
	return n
}

func badge(st workshop.Status) string {
	switch st {
	case workshop.StatusCompleted:
		return theme.StatusDone.Render("✓")
	case workshop.StatusInProgress:
		return theme.StatusActive.Render("◐")
	default:
		return theme.StatusTodo.Render("○")
	}
}

func (s *ListScreen) View(width, height int) string {
	if s.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Dim.Render("loading lessons..."))
	}
	if s.loadErr != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.CheckFail.Render("could not load lessons")+"\n\n"+
				theme.Dim.Render(s.loadErr.Error()))
	}
	if len(s.lessons) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Dim.Render("this workshop has no lessons yet"))
	}

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	bar := components.NewProgressBar("Progress", s.completedCount(), len(s.lessons), barWidth)

	var rows string
	for i, l := range s.lessons {
		meta, _ := l.Meta()
		title := meta.Title
		if title == "" {
			title = l.Name
		}
		line := fmt.Sprintf("%s  %2d. %s", badge(meta.Status), i+1, title)
		if i == s.selected {
			rows += theme.Selected.Render("  ▸ ") + line + "\n"
		} else {
			rows += "    " + line + "\n"
		}
	}

	content := bar.View() + "\n\n" + rows

	return lipgloss.NewStyle().Padding(1, 3).Width(width).Render(content)
}
