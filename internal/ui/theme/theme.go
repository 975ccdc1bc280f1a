package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: warm terminal tones on dark stone
var (
	Primary   = lipgloss.Color("#E11D48") // Crimson
	Secondary = lipgloss.Color("#2DD4BF") // Teal
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#F87171") // Soft Red
	Text      = lipgloss.Color("#E7E5E4") // Warm White
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	BgDark    = lipgloss.Color("#1C1917") // Near Black
	BgCard    = lipgloss.Color("#292524") // Dark Stone
	Border    = lipgloss.Color("#44403C") // Stone Border
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Emphasis = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	PaneActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	PaneInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(Border)
)

// Lesson progress badges
var (
	StatusDone = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusActive = lipgloss.NewStyle().
			Foreground(Accent)

	StatusTodo = lipgloss.NewStyle().
			Foreground(TextDim)
)

// Markdown rendering
var (
	MdHeading = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	MdSubheading = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	MdCode = lipgloss.NewStyle().
		Foreground(Accent)

	MdListBullet = lipgloss.NewStyle().
			Foreground(Secondary)

	HintCollapsed = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	HintExpanded = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	HintFocused = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Check output
var (
	CheckStdout = lipgloss.NewStyle().
			Foreground(TextDim)

	CheckStderr = lipgloss.NewStyle().
			Foreground(Error)

	CheckPass = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	CheckFail = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
