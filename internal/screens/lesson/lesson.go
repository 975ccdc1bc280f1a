// Package lesson renders a single lesson: its markdown body with
// collapsible hints, and the dependency and solution check runners.
package lesson

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/charmbracelet/log"

	"github.com/abhisek/dojo/internal/checker"
	"github.com/abhisek/dojo/internal/config"
	"github.com/abhisek/dojo/internal/screen"
	"github.com/abhisek/dojo/internal/ui/layout"
	"github.com/abhisek/dojo/internal/ui/markdown"
	"github.com/abhisek/dojo/internal/workshop"
)

type runKind int

const (
	kindSolution runKind = iota
	kindDeps
)

const (
	spinnerInterval = 120 * time.Millisecond
	maxOutputLines  = 200
)

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// LessonScreen is the lesson detail view.
type LessonScreen struct {
	lesson *workshop.Lesson
	store  *workshop.Store
	tools  checker.Tools
	status *config.Status

	loading bool
	loadErr error
	blocks  []markdown.Block
	nHints  int

	expanded map[int]bool
	focused  int

	scroll   int
	lastMax  int
	lastPage int

	run     *checker.Run
	kind    runKind
	running bool
	output  []checker.Event
	passed  *bool
	notice  string
	frame   int
}

var _ screen.Screen = (*LessonScreen)(nil)

// New creates the detail screen for a loaded lesson.
func New(l *workshop.Lesson, store *workshop.Store, tools checker.Tools, status *config.Status) *LessonScreen {
	return &LessonScreen{
		lesson:   l,
		store:    store,
		tools:    tools,
		status:   status,
		loading:  true,
		expanded: map[int]bool{},
		focused:  -1,
	}
}

// Init reads the lesson body, marks a fresh lesson as in progress, and
// remembers the position for the next run.
func (s *LessonScreen) Init() tea.Cmd {
	l, store, status := s.lesson, s.store, s.status
	return func() tea.Msg {
		text, err := l.Text()
		if err != nil {
			return loadedMsg{err: err}
		}
		meta, err := l.Meta()
		if err != nil {
			return loadedMsg{err: err}
		}
		if meta.Status == workshop.StatusNotStarted {
			if err := l.UpdateStatus(workshop.StatusInProgress); err != nil {
				log.Warn("mark lesson in progress", "lesson", l.Name, "err", err)
			}
		}
		status.Workshop = store.Name
		status.Lesson = l.Name
		if err := status.Save(); err != nil {
			log.Warn("save position", "err", err)
		}
		return loadedMsg{blocks: markdown.Parse(text)}
	}
}

func (s *LessonScreen) Title() string {
	meta, err := s.lesson.Meta()
	if err == nil && meta.Title != "" {
		return meta.Title
	}
	return s.lesson.Name
}

func (s *LessonScreen) ContextLine() string {
	return fmt.Sprintf("%s · %s · %s", s.store.Name, s.lesson.Spoken, s.lesson.Programming)
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "j/k", Description: "Scroll"},
	}
	if s.nHints > 0 {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Hints"})
	}
	if s.running {
		hints = append(hints, layout.KeyHint{Key: "x", Description: "Cancel"})
	} else {
		hints = append(hints,
			layout.KeyHint{Key: "c", Description: "Check solution"},
			layout.KeyHint{Key: "d", Description: "Check deps"},
		)
	}
	return hints
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		s.loadErr = msg.err
		s.blocks = msg.blocks
		s.nHints = markdown.CountHints(msg.blocks)
		return s, nil

	case runStartedMsg:
		s.run = msg.run
		s.kind = msg.kind
		s.running = true
		s.output = nil
		s.passed = nil
		s.notice = ""
		return s, tea.Batch(listen(msg.run), s.spinnerTick())

	case runFailedMsg:
		s.notice = "could not start check: " + msg.err.Error()
		return s, nil

	case runEventMsg:
		return s.onRunEvent(msg)

	case spinnerTickMsg:
		if !s.running {
			return s, nil
		}
		s.frame++
		return s, s.spinnerTick()

	case statusSavedMsg:
		if msg.err != nil {
			log.Warn("save lesson status", "err", msg.err)
			s.notice = "could not record completion: " + msg.err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		return s.onKey(msg)
	}
	return s, nil
}

func (s *LessonScreen) onKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "down", "j":
		s.scroll++
	case "up", "k":
		s.scroll--
	case "pgdown":
		s.scroll += s.lastPage
	case "pgup":
		s.scroll -= s.lastPage
	case "g":
		s.scroll = 0
	case "G":
		s.scroll = s.lastMax
	case "tab":
		if s.nHints > 0 {
			s.focused = (s.focused + 1) % s.nHints
		}
	case "shift+tab":
		if s.nHints > 0 {
			s.focused--
			if s.focused < 0 {
				s.focused = s.nHints - 1
			}
		}
	case "enter", "space":
		if s.focused >= 0 {
			s.expanded[s.focused] = !s.expanded[s.focused]
		}
	case "c":
		return s, s.startCheck(kindSolution)
	case "d":
		return s, s.startCheck(kindDeps)
	case "x":
		if s.run != nil {
			s.run.Cancel()
		}
	}

	if s.scroll > s.lastMax {
		s.scroll = s.lastMax
	}
	if s.scroll < 0 {
		s.scroll = 0
	}
	return s, nil
}

func (s *LessonScreen) onRunEvent(msg runEventMsg) (screen.Screen, tea.Cmd) {
	if s.run == nil || msg.id != s.run.ID {
		return s, nil
	}
	if msg.ev.Done {
		s.running = false
		s.run = nil
		passed := msg.ev.Err == nil
		s.passed = &passed
		if !passed && msg.ev.Err != nil {
			s.output = append(s.output, checker.Event{Line: msg.ev.Err.Error(), Stderr: true})
		}
		if passed && s.kind == kindSolution {
			return s, s.saveCompleted()
		}
		return s, nil
	}
	s.output = append(s.output, msg.ev)
	if len(s.output) > maxOutputLines {
		s.output = s.output[1:]
	}
	return s, listen(s.run)
}

func (s *LessonScreen) spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// listen pulls the next event off a run's channel.
func listen(run *checker.Run) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-run.Events
		if !ok {
			return nil
		}
		return runEventMsg{id: run.ID, ev: ev}
	}
}

func (s *LessonScreen) startCheck(kind runKind) tea.Cmd {
	if s.running {
		return nil
	}
	switch kind {
	case kindSolution:
		if !s.tools.SolutionReady() {
			s.notice = s.toolNotice()
			return nil
		}
	case kindDeps:
		if !s.tools.DepsReady() {
			s.notice = s.toolNotice()
			return nil
		}
	}

	lesson, store, tools := s.lesson, s.store, s.tools
	return func() tea.Msg {
		var run *checker.Run
		var err error
		switch kind {
		case kindSolution:
			run, err = checker.CheckSolution(context.Background(), tools.Python, tools.Compose, lesson.Path)
		case kindDeps:
			var script string
			script, err = store.DepsScriptPath(lesson.Spoken, lesson.Programming)
			if err == nil {
				run, err = checker.CheckDependencies(context.Background(), tools.Python, script)
			}
		}
		if err != nil {
			return runFailedMsg{err: err}
		}
		return runStartedMsg{run: run, kind: kind}
	}
}

func (s *LessonScreen) toolNotice() string {
	if s.tools.PythonErr != nil {
		return s.tools.PythonErr.Error()
	}
	if s.tools.ComposeErr != nil {
		return s.tools.ComposeErr.Error()
	}
	return ""
}

func (s *LessonScreen) saveCompleted() tea.Cmd {
	l := s.lesson
	return func() tea.Msg {
		return statusSavedMsg{err: l.UpdateStatus(workshop.StatusCompleted)}
	}
}
