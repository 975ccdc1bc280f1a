package markdown

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dojo/internal/ui/theme"
)

// Renderer turns parsed blocks into styled terminal text. Hints render
// collapsed by default; Expanded holds the hint indexes (in document
// order) that are open, Focused marks the hint the cursor is on.
type Renderer struct {
	Width    int
	Expanded map[int]bool
	Focused  int
}

// NewRenderer creates a renderer with no expanded hints.
func NewRenderer(width int) Renderer {
	return Renderer{
		Width:    width,
		Expanded: map[int]bool{},
		Focused:  -1,
	}
}

// CountHints returns the number of hints in the block list.
func CountHints(blocks []Block) int {
	n := 0
	for _, b := range blocks {
		if _, ok := b.(Hint); ok {
			n++
		}
	}
	return n
}

// Render lays out the blocks top to bottom, one blank line between them.
func (r Renderer) Render(blocks []Block) string {
	var parts []string
	hintIdx := 0
	for _, b := range blocks {
		switch b := b.(type) {
		case Heading:
			parts = append(parts, r.heading(b))
		case Paragraph:
			parts = append(parts, r.wrap(theme.Body, b.Text))
		case ListItem:
			bullet := theme.MdListBullet.Render("  • ")
			parts = append(parts, bullet+r.wrapIndent(theme.Body, b.Text, 4))
		case CodeBlock:
			parts = append(parts, r.code(b))
		case Hint:
			parts = append(parts, r.hint(b, hintIdx))
			hintIdx++
		}
	}
	return strings.Join(parts, "\n\n")
}

func (r Renderer) heading(h Heading) string {
	style := theme.MdSubheading
	if h.Level <= 1 {
		style = theme.MdHeading
	}
	return style.Render(h.Text)
}

func (r Renderer) code(c CodeBlock) string {
	code := strings.TrimRight(c.Code, "\n")
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = "    " + theme.MdCode.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (r Renderer) hint(h Hint, idx int) string {
	marker := "▸"
	style := theme.HintCollapsed
	if r.Expanded[idx] {
		marker = "▾"
		style = theme.HintExpanded
	}
	if idx == r.Focused {
		style = theme.HintFocused
	}

	title := style.Render(fmt.Sprintf("%s Hint - %s", marker, h.Title))
	if !r.Expanded[idx] {
		return title
	}

	body := r.Render(h.Body)
	indented := make([]string, 0)
	for _, line := range strings.Split(body, "\n") {
		indented = append(indented, "  "+line)
	}
	return title + "\n\n" + strings.Join(indented, "\n")
}

func (r Renderer) wrap(style lipgloss.Style, text string) string {
	if r.Width > 0 {
		style = style.Width(r.Width)
	}
	return style.Render(text)
}

func (r Renderer) wrapIndent(style lipgloss.Style, text string, indent int) string {
	w := r.Width - indent
	if w > 0 {
		style = style.Width(w)
	}
	wrapped := style.Render(text)
	lines := strings.Split(wrapped, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.Repeat(" ", indent) + lines[i]
	}
	return strings.Join(lines, "\n")
}
