package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	help := []string{
		"Form",
		"  tab / shift+tab   move between fields",
		"  left / right      change platform, tone, language, count",
		"  enter             generate (on the button)",
		"",
		"Results",
		"  c                 copy all captions",
		"  n                 start a new description",
		"",
		"The API key is read from OPENAI_API_KEY, a local .env file,",
		"or ~/.config/capgen/config.yaml.",
	}

	helpBox := styleBox.
		Width(min(64, a.width-4)).
		Render(strings.Join(help, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, helpBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("Press any key to go back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
