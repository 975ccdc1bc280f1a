// Package logview shows the in-memory tail of the application log.
package logview

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dojo/internal/logging"
	"github.com/abhisek/dojo/internal/screen"
	"github.com/abhisek/dojo/internal/ui/layout"
	"github.com/abhisek/dojo/internal/ui/theme"
)

// RefreshMsg asks the view to re-read the log tail. The app sends one
// whenever a new line is written.
type RefreshMsg struct{}

// LogScreen renders the last log lines, following new output unless the
// user has scrolled up.
type LogScreen struct {
	scroll    int
	following bool
	lastMax   int
}

var _ screen.Screen = (*LogScreen)(nil)

func New() *LogScreen {
	return &LogScreen{following: true}
}

func (l *LogScreen) Init() tea.Cmd {
	return nil
}

func (l *LogScreen) Title() string {
	return "Log"
}

func (l *LogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "j/k", Description: "Scroll"},
		{Key: "f", Description: "Follow"},
	}
}

func (l *LogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshMsg:
		return l, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "down", "j":
			l.scroll++
			l.following = false
		case "up", "k":
			l.scroll--
			l.following = false
		case "f":
			l.following = true
		case "g":
			l.scroll = 0
			l.following = false
		case "G":
			l.following = true
		}
		if l.scroll > l.lastMax {
			l.scroll = l.lastMax
		}
		if l.scroll < 0 {
			l.scroll = 0
		}
	}
	return l, nil
}

func (l *LogScreen) View(width, height int) string {
	lines := logging.LogTail().Lines()

	page := height - 2
	if page < 1 {
		page = 1
	}
	maxScroll := len(lines) - page
	if maxScroll < 0 {
		maxScroll = 0
	}
	l.lastMax = maxScroll

	if l.following {
		l.scroll = maxScroll
	}
	offset := l.scroll
	if offset > maxScroll {
		offset = maxScroll
	}

	end := offset + page
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	if len(lines) == 0 {
		b.WriteString(theme.Dim.Render("no log output yet"))
	}
	for i := offset; i < end; i++ {
		b.WriteString(theme.Dim.Render(lines[i]))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(b.String())
}
