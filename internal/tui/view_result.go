package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ysaito/capgen/internal/caption"
)

func (a *App) renderResult() string {
	var b strings.Builder
	s := a.state

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Caption ideas")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")

	// The request is always set by the time results render; submit()
	// snapshots it before the generating view takes over.
	info := styleSubtitle.Render(fmt.Sprintf("%s · %s · %s",
		s.request.Platform, s.request.Tone, s.request.Language))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, info))
	b.WriteString("\n\n")

	// Captions, display-truncated to the requested count.
	shown := caption.Limit(s.captions, s.request.Variants)
	var lines []string
	for i, c := range shown {
		lines = append(lines, styleIndex.Render(fmt.Sprintf("%d.", i+1))+" "+c)
	}
	captionBox := styleBox.
		Width(min(70, a.width-4)).
		BorderForeground(colorPrimary).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, captionBox))
	b.WriteString("\n\n")

	// Summary is best-effort; a miss is a notice, not an error.
	var summaryLine string
	switch {
	case !s.summaryDone:
		summaryLine = styleSubtitle.Render("Summarizing the description...")
	case s.summaryOK:
		summaryLine = styleSubtitle.Render("Summary: ") +
			lipgloss.NewStyle().Foreground(colorSecondary).Render(s.summary)
	default:
		summaryLine = styleSubtitle.Render("Summary not available.")
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(70, a.width-4)).Render(summaryLine)))
	b.WriteString("\n\n")

	var status string
	if s.copied {
		status = lipgloss.NewStyle().Foreground(colorSuccess).Render("Copied to clipboard!") +
			styleStatusBar.Render("  [n] New  [Esc] Quit")
	} else {
		status = styleStatusBar.Render("[c] Copy all  [n] New  [?] Help  [Esc] Quit")
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
