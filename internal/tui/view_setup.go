package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderSetup() string {
	var b strings.Builder

	header := styleLogo.Render(logo)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n\n")

	title := lipgloss.NewStyle().
		Foreground(colorWhite).
		Bold(true).
		Render("Enter your OpenAI API key:")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	note := styleSubtitle.Render("Also read from OPENAI_API_KEY or a local .env file.\nGet one at: https://platform.openai.com/api-keys")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, note))
	b.WriteString("\n\n")

	inputBox := styleBox.
		Width(60).
		BorderForeground(colorSecondary).
		Render(a.state.apiKeyInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	if a.state.providerError != nil {
		errLine := lipgloss.NewStyle().
			Foreground(colorError).
			Render(truncate(a.state.providerError.Error(), 70))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errLine))
		b.WriteString("\n\n")
	}

	instructions := styleStatusBar.Render("[Enter] Save  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
