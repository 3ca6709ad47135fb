package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderGenerating() string {
	var b strings.Builder
	s := a.state

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Generating captions")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if s.request != nil {
		info := styleSubtitle.Render(fmt.Sprintf("%s · %s · %d variants",
			s.request.Platform, s.request.Tone, s.request.Variants))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, info))
		b.WriteString("\n\n")

		desc := styleSubtitle.Render("> " + truncate(s.request.Description, 55))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, desc))
		b.WriteString("\n\n")
	}

	spin := s.spin.View() + " Waiting for the model..."
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, spin))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
