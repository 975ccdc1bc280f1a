package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dojo/internal/ui/theme"
)

// FilterInput wraps bubbles/textinput for incremental list filtering.
type FilterInput struct {
	Model textinput.Model
}

// NewFilterInput creates a blurred filter input with the standard
// prompt. Call Focus before routing keys to it.
func NewFilterInput(placeholder string) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	ti.CharLimit = 64
	return FilterInput{Model: ti}
}

// Focus starts accepting input.
func (f *FilterInput) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur stops accepting input.
func (f *FilterInput) Blur() {
	f.Model.Blur()
}

// Reset clears the input value.
func (f *FilterInput) Reset() {
	f.Model.SetValue("")
}

// Update handles messages.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the input with a dim frame.
func (f FilterInput) View() string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(f.Model.View())
}

// Value returns the current filter text.
func (f FilterInput) Value() string {
	return f.Model.Value()
}
