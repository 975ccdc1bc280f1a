package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dojo/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu. Detail is an
// optional right-hand annotation rendered dim after the label.
type MenuItem struct {
	Label    string
	Detail   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu. When MaxVisible is set and the
// item count exceeds it, the menu windows around the selection.
type Menu struct {
	Items      []MenuItem
	Selected   int
	MaxVisible int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// window returns the half-open item range currently visible.
func (m Menu) window() (int, int) {
	if m.MaxVisible <= 0 || len(m.Items) <= m.MaxVisible {
		return 0, len(m.Items)
	}
	start := m.Selected - m.MaxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + m.MaxVisible
	if end > len(m.Items) {
		end = len(m.Items)
		start = end - m.MaxVisible
	}
	return start, end
}

// View renders the menu.
func (m Menu) View() string {
	start, end := m.window()

	var s string
	if start > 0 {
		s += theme.Dim.Render("    ↑ more") + "\n"
	}
	for i := start; i < end; i++ {
		item := m.Items[i]
		switch {
		case item.Disabled:
			s += theme.Disabled.Render("    "+item.Label) + "\n"
		case i == m.Selected:
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ ") + theme.Selected.Render(item.Label)
			if item.Detail != "" {
				s += "  " + theme.Dim.Render(item.Detail)
			}
			s += "\n"
		default:
			s += "    " + theme.Unselected.Render(item.Label)
			if item.Detail != "" {
				s += "  " + theme.Dim.Render(item.Detail)
			}
			s += "\n"
		}
	}
	if end < len(m.Items) {
		s += theme.Dim.Render("    ↓ more") + "\n"
	}
	return s
}
