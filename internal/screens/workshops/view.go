package workshops

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dojo/internal/ui/layout"
	"github.com/abhisek/dojo/internal/ui/markdown"
	"github.com/abhisek/dojo/internal/ui/theme"
)

func (h *HubScreen) View(width, height int) string {
	if len(h.all) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Body.Render("no workshops installed")+"\n\n"+
				theme.Dim.Render("add one under the workshops directory or run: dojo init <name>"))
	}

	filterLine := ""
	if h.filtering || h.filter.Value() != "" {
		filterLine = "  " + h.filter.View() + "\n"
	}

	paneH := height - 4
	if filterLine != "" {
		paneH -= 2
	}
	if paneH < 6 {
		paneH = 6
	}

	leftW := width / 3
	if leftW < 26 {
		leftW = 26
	}
	if leftW > 42 {
		leftW = 42
	}
	leftW, rightW := layout.SplitColumns(width-4, leftW)

	listStyle, detailStyle := theme.PaneActive, theme.PaneInactive
	if h.focus == focusDetail {
		listStyle, detailStyle = theme.PaneInactive, theme.PaneActive
	}

	left := listStyle.Width(leftW - 2).Height(paneH).Render(h.renderList(leftW-4, paneH))
	right := detailStyle.Width(rightW - 2).Height(paneH).Render(h.renderDetail(rightW-4, paneH))
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	return lipgloss.NewStyle().Padding(1, 1).Render(filterLine + row)
}

func (h *HubScreen) renderList(width, height int) string {
	if len(h.visible) == 0 {
		return theme.Dim.Render("nothing matches the current\nlanguage selection or filter")
	}

	var b strings.Builder
	for i, st := range h.visible {
		label := trunc(st.Name, width-2)
		if i == h.selected {
			b.WriteString(theme.Selected.Render("▸ " + label))
		} else {
			b.WriteString(theme.Unselected.Render("  " + label))
		}
		b.WriteString("\n")
		if i+1 >= height {
			break
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (h *HubScreen) renderDetail(width, height int) string {
	st := h.current()
	if st == nil {
		return theme.Dim.Render("select a workshop")
	}

	spk, _ := h.selection()
	var b strings.Builder

	meta, err := st.Metadata(spk)
	if err != nil {
		b.WriteString(theme.CheckFail.Render("metadata unavailable") + "\n")
		b.WriteString(theme.Dim.Render(err.Error()) + "\n")
	} else {
		title := meta.Title
		if title == "" {
			title = st.Name
		}
		b.WriteString(theme.Emphasis.Render(title) + "\n")
		if len(meta.Authors) > 0 {
			b.WriteString(theme.Dim.Render("by "+strings.Join(meta.Authors, ", ")) + "\n")
		}
		b.WriteString(stars(meta.Difficulty))
		if meta.License != "" {
			b.WriteString(theme.Dim.Render("  " + meta.License))
		}
		b.WriteString("\n")
		if meta.Homepage != "" {
			b.WriteString(theme.Dim.Render(meta.Homepage) + "\n")
		}
	}
	b.WriteString("\n")

	desc, err := st.Description(spk)
	if err != nil {
		b.WriteString(theme.Dim.Render("no description available: " + err.Error()))
	} else {
		r := markdown.NewRenderer(width)
		b.WriteString(r.Render(markdown.Parse(desc)))
	}

	lines := strings.Split(b.String(), "\n")
	h.detailMax = len(lines) - height
	if h.detailMax < 0 {
		h.detailMax = 0
	}
	if h.detailScroll > h.detailMax {
		h.detailScroll = h.detailMax
	}
	end := h.detailScroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[h.detailScroll:end], "\n")
}

func stars(difficulty int) string {
	if difficulty < 0 {
		difficulty = 0
	}
	if difficulty > 5 {
		difficulty = 5
	}
	filled := strings.Repeat("★", difficulty)
	empty := strings.Repeat("☆", 5-difficulty)
	return theme.Emphasis.Render(filled) + theme.Dim.Render(empty)
}

func trunc(s string, max int) string {
	if max < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return fmt.Sprintf("%s…", string(r[:max-1]))
}
