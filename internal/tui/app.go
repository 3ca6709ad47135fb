package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ysaito/capgen/internal/caption"
	"github.com/ysaito/capgen/internal/config"
	"github.com/ysaito/capgen/internal/llm"
)

type view int

const (
	viewSetup view = iota
	viewForm
	viewGenerating
	viewResult
	viewError
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp() *App {
	s := newState()

	cfg, err := config.Load()
	if err != nil || cfg == nil {
		cfg = config.DefaultConfig()
	}
	s.config = cfg

	// No key anywhere: block submission behind the setup view.
	if cfg.Validate() != nil {
		s.needsSetup = true
	}

	return &App{
		view:  viewForm,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		a.view = viewSetup
		a.state.apiKeyInput.Focus()
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	a.buildGenerator()
	return tea.Batch(
		tea.WindowSize(),
		textarea.Blink,
		a.testProvider(),
	)
}

func (a *App) buildGenerator() {
	provider := llm.NewOpenAIProvider(a.state.config.APIKey, a.state.config.BaseURL)
	a.state.generator = caption.NewGenerator(provider, a.state.config.Model)
}

func (a *App) testProvider() tea.Cmd {
	provider := llm.NewOpenAIProvider(a.state.config.APIKey, a.state.config.BaseURL)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}
		return providerReadyMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := a.handleKey(msg)
		if handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if a.view == viewGenerating {
			var cmd tea.Cmd
			a.state.spin, cmd = a.state.spin.Update(msg)
			return a, cmd
		}
		return a, nil

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.buildGenerator()
		a.view = viewForm
		a.state.resetForm()
		return a, tea.Batch(textarea.Blink, a.testProvider())

	case setupErrorMsg:
		a.state.providerError = msg.error
		return a, nil

	case providerReadyMsg:
		a.state.providerReady = true
		a.state.providerError = nil
		return a, nil

	case providerErrorMsg:
		a.state.providerError = msg.error
		return a, nil

	case captionsMsg:
		a.state.captions = msg.captions
		a.view = viewResult
		// Captions are on screen; the summary arrives when it arrives.
		return a, a.summarize()

	case generateFailedMsg:
		a.state.generateError = msg.error
		a.view = viewError
		return a, nil

	case summaryMsg:
		a.state.summary = msg.text
		a.state.summaryOK = msg.ok
		a.state.summaryDone = true
		return a, nil
	}

	// Route remaining messages to the focused input.
	switch {
	case a.view == viewSetup:
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewForm && a.state.focus == focusDescription:
		var cmd tea.Cmd
		a.state.description, cmd = a.state.description.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// handleKey processes navigation keys. handled=false lets the key fall
// through to the focused text component.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return tea.Quit, true
	}

	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewForm:
		return a.handleFormKey(msg)
	case viewResult:
		return a.handleResultKey(msg)
	case viewError:
		return a.handleErrorKey(msg)
	case viewHelp:
		a.view = viewForm
		return nil, true
	case viewGenerating:
		// Nothing to do but wait; the in-flight call is simply abandoned
		// if the user quits.
		if key.Matches(msg, keys.Quit) {
			a.quitting = true
			return tea.Quit, true
		}
		return nil, true
	}

	return nil, false
}

func (a *App) handleSetupKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit, true
	case key.Matches(msg, keys.Enter):
		apiKey := strings.TrimSpace(a.state.apiKeyInput.Value())
		if apiKey == "" {
			return nil, true
		}
		a.state.config.APIKey = apiKey
		return a.finishSetup(), true
	}
	return nil, false
}

func (a *App) finishSetup() tea.Cmd {
	cfg := a.state.config
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	inDescription := a.state.focus == focusDescription

	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit, true

	case key.Matches(msg, keys.Tab):
		return a.moveFocus(1), true

	case key.Matches(msg, keys.Back):
		return a.moveFocus(-1), true

	case key.Matches(msg, keys.Enter):
		if a.state.focus == focusSubmit {
			return a.submit(), true
		}
		if !inDescription {
			return a.moveFocus(1), true
		}
		return nil, false // newline in the description

	case !inDescription && key.Matches(msg, keys.Left):
		a.cycleField(-1)
		return nil, true

	case !inDescription && key.Matches(msg, keys.Right):
		a.cycleField(1)
		return nil, true

	case !inDescription && msg.String() == "?":
		a.view = viewHelp
		return nil, true
	}

	return nil, false
}

func (a *App) moveFocus(delta int) tea.Cmd {
	a.state.focus = (a.state.focus + delta + focusCount) % focusCount

	if a.state.focus == focusDescription {
		a.state.description.Focus()
		return textarea.Blink
	}
	a.state.description.Blur()
	return nil
}

// cycleField steps the focused picker through its options.
func (a *App) cycleField(delta int) {
	s := a.state
	switch s.focus {
	case focusPlatform:
		s.platformIdx = (s.platformIdx + delta + len(caption.Platforms)) % len(caption.Platforms)
	case focusTone:
		s.toneIdx = (s.toneIdx + delta + len(caption.Tones)) % len(caption.Tones)
	case focusLanguage:
		s.langIdx = (s.langIdx + delta + len(caption.Languages)) % len(caption.Languages)
	case focusVariants:
		s.variants += delta
		if s.variants < caption.MinVariants {
			s.variants = caption.MinVariants
		}
		if s.variants > caption.MaxVariants {
			s.variants = caption.MaxVariants
		}
	}
}

func (a *App) submit() tea.Cmd {
	if strings.TrimSpace(a.state.description.Value()) == "" {
		a.state.formError = "Please enter a description first."
		return nil
	}

	a.state.formError = ""
	a.state.request = a.state.buildRequest()
	a.state.captions = nil
	a.state.summaryDone = false
	a.state.copied = false
	a.view = viewGenerating

	return tea.Batch(a.state.spin.Tick, a.generate(a.state.request))
}

func (a *App) generate(req *caption.Request) tea.Cmd {
	gen := a.state.generator
	return func() tea.Msg {
		captions, err := gen.GenerateCaptions(context.Background(), req)
		if err != nil {
			return generateFailedMsg{err}
		}
		return captionsMsg{captions}
	}
}

func (a *App) summarize() tea.Cmd {
	gen := a.state.generator
	req := a.state.request
	return func() tea.Msg {
		text, ok := gen.GenerateSummary(context.Background(), req.Description, req.Language)
		return summaryMsg{text: text, ok: ok}
	}
}

func (a *App) handleResultKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit, true
	}

	switch msg.String() {
	case "c":
		block := caption.CopyBlock(a.state.captions, a.state.request.Variants)
		if err := clipboard.WriteAll(block); err == nil {
			a.state.copied = true
		}
		return nil, true
	case "n":
		a.state.resetForm()
		a.view = viewForm
		return textarea.Blink, true
	case "?":
		a.view = viewHelp
		return nil, true
	}

	return nil, true
}

func (a *App) handleErrorKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "r":
		// Same request, user-initiated resubmit.
		a.state.generateError = nil
		a.view = viewGenerating
		return tea.Batch(a.state.spin.Tick, a.generate(a.state.request)), true
	case "n":
		a.state.generateError = nil
		a.view = viewForm
		return textarea.Blink, true
	}

	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		return tea.Quit, true
	}
	return nil, true
}

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type providerReadyMsg struct{}
type providerErrorMsg struct{ error }
type captionsMsg struct{ captions []string }
type generateFailedMsg struct{ error }
type summaryMsg struct {
	text string
	ok   bool
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSetup:
		return a.renderSetup()
	case viewForm:
		return a.renderForm()
	case viewGenerating:
		return a.renderGenerating()
	case viewResult:
		return a.renderResult()
	case viewError:
		return a.renderError()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderForm()
	}
}
