package lesson

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dojo/internal/ui/markdown"
	"github.com/abhisek/dojo/internal/ui/theme"
	"github.com/abhisek/dojo/internal/workshop"
)

const outputPaneLines = 10

func (s *LessonScreen) View(width, height int) string {
	if s.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Dim.Render("loading lesson..."))
	}
	if s.loadErr != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.CheckFail.Render("could not load lesson")+"\n\n"+
				theme.Dim.Render(s.loadErr.Error()))
	}

	pane := s.renderOutputPane(width)
	paneHeight := 0
	if pane != "" {
		paneHeight = lipgloss.Height(pane)
	}

	meta, _ := s.lesson.Meta()
	body := statusBadge(meta.Status) + "\n\n" + s.renderBody(width, height-paneHeight-4)

	out := lipgloss.NewStyle().Padding(1, 3).Width(width).Render(body)
	if pane != "" {
		out += "\n" + pane
	}
	return out
}

func (s *LessonScreen) renderBody(width, height int) string {
	inner := width - 6
	if inner < 20 {
		inner = 20
	}

	r := markdown.NewRenderer(inner)
	r.Expanded = s.expanded
	r.Focused = s.focused
	rendered := r.Render(s.blocks)

	lines := strings.Split(rendered, "\n")

	page := height - 1
	if page < 1 {
		page = 1
	}
	maxScroll := len(lines) - page
	if maxScroll < 0 {
		maxScroll = 0
	}
	s.lastMax = maxScroll
	s.lastPage = page

	offset := s.scroll
	if offset > maxScroll {
		offset = maxScroll
	}

	end := offset + page
	if end > len(lines) {
		end = len(lines)
	}
	visible := strings.Join(lines[offset:end], "\n")

	if maxScroll > 0 && offset < maxScroll {
		visible += "\n" + theme.Dim.Render("more ↓")
	}
	return visible
}

// renderOutputPane shows the check runner output. Empty when no run has
// happened and there is nothing to report.
func (s *LessonScreen) renderOutputPane(width int) string {
	if !s.running && s.passed == nil && s.notice == "" {
		return ""
	}

	var b strings.Builder

	switch {
	case s.notice != "":
		b.WriteString(theme.CheckFail.Render(s.notice))
	case s.running:
		frame := string(spinnerFrames[s.frame%len(spinnerFrames)])
		label := "running solution check..."
		if s.kind == kindDeps {
			label = "checking dependencies..."
		}
		b.WriteString(theme.StatusActive.Render(frame + " " + label))
	case s.passed != nil && *s.passed:
		if s.kind == kindSolution {
			b.WriteString(theme.CheckPass.Render("✓ all checks passed — lesson complete"))
		} else {
			b.WriteString(theme.CheckPass.Render("✓ dependencies satisfied"))
		}
	default:
		b.WriteString(theme.CheckFail.Render("✗ check failed"))
	}

	start := len(s.output) - outputPaneLines
	if start < 0 {
		start = 0
	}
	for _, ev := range s.output[start:] {
		b.WriteByte('\n')
		if ev.Stderr {
			b.WriteString(theme.CheckStderr.Render(ev.Line))
		} else {
			b.WriteString(theme.CheckStdout.Render(ev.Line))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(width - 2).
		Render(b.String())
}

func statusBadge(st workshop.Status) string {
	switch st {
	case workshop.StatusCompleted:
		return theme.StatusDone.Render("✓ completed")
	case workshop.StatusInProgress:
		return theme.StatusActive.Render("◐ in progress")
	default:
		return theme.StatusTodo.Render("○ not started")
	}
}
