package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const logo = `█ █ █▀▀ █▀▀ █▀█ █▄ █ ▄▀█ █▀▄▀█ █▀▀ █▀█
█▄█ ▄▄█ ██▄ █▀▄ █ ▀█ █▀█ █ ▀ █ ██▄ █▀▄`

func renderHeader(width int, title string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorFavorite)).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Italic(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	content := logoStyle.Render(logo)
	if lipgloss.Width(logo) > width-2 {
		// Too narrow for the block letters
		content = logoStyle.Render("usernamer")
	}
	if title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, titleStyle.Render(title))
	}

	return headerPadding.Render(content)
}
