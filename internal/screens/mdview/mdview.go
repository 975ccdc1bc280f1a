// Package mdview is a scrollable read-only viewer for markdown content
// and preformatted text such as license files.
package mdview

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dojo/internal/screen"
	"github.com/abhisek/dojo/internal/ui/layout"
	"github.com/abhisek/dojo/internal/ui/markdown"
	"github.com/abhisek/dojo/internal/ui/theme"
)

// Viewer renders a document with vertical scrolling.
type Viewer struct {
	title  string
	blocks []markdown.Block
	plain  string

	scroll   int
	lastMax  int
	lastPage int
}

var _ screen.Screen = (*Viewer)(nil)

// New creates a viewer over markdown source.
func New(title, source string) *Viewer {
	return &Viewer{
		title:  title,
		blocks: markdown.Parse(source),
	}
}

// NewPlain creates a viewer over preformatted text, rendered as-is.
func NewPlain(title, text string) *Viewer {
	return &Viewer{
		title: title,
		plain: text,
	}
}

func (v *Viewer) Init() tea.Cmd {
	return nil
}

func (v *Viewer) Title() string {
	return v.title
}

func (v *Viewer) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "j/k", Description: "Scroll"},
		{Key: "g/G", Description: "Top/Bottom"},
	}
}

func (v *Viewer) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch kmsg.String() {
	case "down", "j":
		v.scroll++
	case "up", "k":
		v.scroll--
	case "pgdown", "space":
		v.scroll += v.lastPage
	case "pgup":
		v.scroll -= v.lastPage
	case "g":
		v.scroll = 0
	case "G":
		v.scroll = v.lastMax
	}

	if v.scroll > v.lastMax {
		v.scroll = v.lastMax
	}
	if v.scroll < 0 {
		v.scroll = 0
	}
	return v, nil
}

func (v *Viewer) View(width, height int) string {
	inner := width - 6
	if inner < 20 {
		inner = 20
	}

	var body string
	if v.blocks != nil {
		body = markdown.NewRenderer(inner).Render(v.blocks)
	} else {
		body = theme.Body.Render(v.plain)
	}

	lines := strings.Split(body, "\n")

	page := height - 2
	if page < 1 {
		page = 1
	}
	maxScroll := len(lines) - page
	if maxScroll < 0 {
		maxScroll = 0
	}
	v.lastMax = maxScroll
	v.lastPage = page

	offset := v.scroll
	if offset > maxScroll {
		offset = maxScroll
	}

	end := offset + page
	if end > len(lines) {
		end = len(lines)
	}
	visible := strings.Join(lines[offset:end], "\n")

	if maxScroll > 0 {
		marker := "more ↓"
		if offset >= maxScroll {
			marker = "end"
		}
		visible += "\n" + theme.Dim.Render(marker)
	}

	return lipgloss.NewStyle().Padding(1, 3).Width(width).Render(visible)
}
