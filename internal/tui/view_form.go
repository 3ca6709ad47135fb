package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ysaito/capgen/internal/caption"
)

const logo = `
  ██████╗ █████╗ ██████╗  ██████╗ ███████╗███╗   ██╗
 ██╔════╝██╔══██╗██╔══██╗██╔════╝ ██╔════╝████╗  ██║
 ██║     ███████║██████╔╝██║  ███╗█████╗  ██╔██╗ ██║
 ██║     ██╔══██║██╔═══╝ ██║   ██║██╔══╝  ██║╚██╗██║
 ╚██████╗██║  ██║██║     ╚██████╔╝███████╗██║ ╚████║
  ╚═════╝╚═╝  ╚═╝╚═╝      ╚═════╝ ╚══════╝╚═╝  ╚═══╝
`

func (a *App) renderForm() string {
	var b strings.Builder
	s := a.state

	header := styleLogo.Render(logo)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n")

	subtitle := styleSubtitle.Render("Social media captions from a short description")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	// Ping failure shows as a banner, the form stays usable.
	if s.providerError != nil {
		warn := lipgloss.NewStyle().
			Foreground(colorError).
			Render(truncate("Warning: "+s.providerError.Error(), 70))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, warn))
		b.WriteString("\n\n")
	} else if !s.providerReady {
		checking := styleSubtitle.Render("Checking OpenAI connection...")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, checking))
		b.WriteString("\n\n")
	}

	// Description
	descLabel := a.fieldLabel("Description", focusDescription)
	count := styleSubtitle.Render(fmt.Sprintf("%d/%d", len(s.description.Value()), caption.MaxDescriptionLen))
	descBorder := colorMuted
	if s.focus == focusDescription {
		descBorder = colorSecondary
	}
	descBox := styleBox.
		Width(min(64, a.width-4)).
		BorderForeground(descBorder).
		Render(s.description.View())

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, descLabel+"  "+count))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, descBox))
	b.WriteString("\n\n")

	// Pickers
	rows := []string{
		a.pickerRow("Platform", caption.Platforms[s.platformIdx], focusPlatform),
		a.pickerRow("Tone", caption.Tones[s.toneIdx], focusTone),
		a.pickerRow("Language", caption.Languages[s.langIdx], focusLanguage),
		a.pickerRow("Variants", fmt.Sprintf("%d", s.variants), focusVariants),
	}
	pickerBox := styleBox.
		Width(min(64, a.width-4)).
		Render(strings.Join(rows, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, pickerBox))
	b.WriteString("\n\n")

	// Submit
	submit := "[ Generate captions ]"
	if s.focus == focusSubmit {
		submit = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorPrimary).
			Bold(true).
			Padding(0, 1).
			Render("Generate captions")
	} else {
		submit = styleSubtitle.Render(submit)
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, submit))
	b.WriteString("\n")

	if s.formError != "" {
		errLine := lipgloss.NewStyle().Foreground(colorError).Render(s.formError)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errLine))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	status := styleStatusBar.Render("[Tab] Next field  [←/→] Change option  [Enter] Generate  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func (a *App) fieldLabel(name string, focus int) string {
	if a.state.focus == focus {
		return styleLabelFocused.Render(name)
	}
	return styleLabel.Render(name)
}

func (a *App) pickerRow(name, value string, focus int) string {
	label := a.fieldLabel(fmt.Sprintf("%-10s", name), focus)
	if a.state.focus == focus {
		return fmt.Sprintf("%s  %s %s %s",
			label,
			styleLabelFocused.Render("<"),
			lipgloss.NewStyle().Foreground(colorWhite).Bold(true).Render(value),
			styleLabelFocused.Render(">"),
		)
	}
	return fmt.Sprintf("%s    %s", label, value)
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
