package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/ysaito/capgen/internal/caption"
	"github.com/ysaito/capgen/internal/config"
)

// Form focus positions, top to bottom.
const (
	focusDescription = iota
	focusPlatform
	focusTone
	focusLanguage
	focusVariants
	focusSubmit
	focusCount
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup
	apiKeyInput textinput.Model

	// Form
	description textarea.Model
	platformIdx int
	toneIdx     int
	langIdx     int
	variants    int
	focus       int
	formError   string

	// Generating
	spin spinner.Model

	// Result
	request     *caption.Request
	captions    []string
	summary     string
	summaryOK   bool
	summaryDone bool
	copied      bool

	// Errors
	generateError error
	providerError error

	// Generation
	generator     *caption.Generator
	providerReady bool
}

func newState() *state {
	desc := textarea.New()
	desc.Placeholder = "A weekend photo at the beach, coffee and a good book..."
	desc.CharLimit = caption.MaxDescriptionLen
	desc.SetWidth(60)
	desc.SetHeight(4)
	desc.ShowLineNumbers = false
	desc.Focus()

	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your OpenAI API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &state{
		description: desc,
		apiKeyInput: apiKey,
		spin:        spin,
		variants:    caption.DefaultVariants,
	}
}

// resetForm clears the submission-specific state for a fresh form.
func (s *state) resetForm() {
	s.description.Reset()
	s.description.Focus()
	s.focus = focusDescription
	s.formError = ""
	s.request = nil
	s.captions = nil
	s.summary = ""
	s.summaryOK = false
	s.summaryDone = false
	s.copied = false
	s.generateError = nil
}

// buildRequest snapshots the form into an immutable request.
func (s *state) buildRequest() *caption.Request {
	return &caption.Request{
		Description: s.description.Value(),
		Platform:    caption.Platforms[s.platformIdx],
		Tone:        caption.Tones[s.toneIdx],
		Language:    caption.Languages[s.langIdx],
		Variants:    s.variants,
	}
}
