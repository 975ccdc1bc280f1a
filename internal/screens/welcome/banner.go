package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dojo/internal/ui/theme"
)

const bannerArt = `██████╗  ██████╗      ██╗ ██████╗
██╔══██╗██╔═══██╗     ██║██╔═══██╗
██║  ██║██║   ██║     ██║██║   ██║
██║  ██║██║   ██║██   ██║██║   ██║
██████╔╝╚██████╔╝╚█████╔╝╚██████╔╝
╚═════╝  ╚═════╝  ╚════╝  ╚═════╝`

const bannerWidth = 34

// RenderBanner renders the application wordmark, falling back to plain
// text when the terminal is too narrow for the block art.
func RenderBanner(width int) string {
	if width < bannerWidth+2 {
		return lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render("D O J O")
	}
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(bannerArt)
}
