package caption

import (
	"context"
	"strings"

	"github.com/ysaito/capgen/internal/llm"
)

// Generation constants. Not user-tunable.
const (
	temperature = 0.7
	maxTokens   = 400
)

// Generator turns a request into captions via one completion call,
// and optionally a description summary via a second one.
type Generator struct {
	provider llm.Provider
	model    string
}

// NewGenerator creates a generator backed by the given provider.
func NewGenerator(provider llm.Provider, model string) *Generator {
	return &Generator{
		provider: provider,
		model:    model,
	}
}

// GenerateCaptions runs the full cycle: validate, build the prompt, call
// the completion API once, parse the numbered list. If parsing finds no
// captions, the trimmed raw text becomes the sole caption, so a successful
// generation never yields an empty list. Provider failures come back as
// *GenerationError.
func (g *Generator) GenerateCaptions(ctx context.Context, req *Request) ([]string, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}

	prompt := BuildCaptionPrompt(req)

	resp, err := g.provider.Complete(ctx, &llm.CompletionRequest{
		Model: g.model,
		Messages: []llm.Message{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, &GenerationError{Cause: err}
	}

	captions := ParseCaptions(resp.Content)
	if len(captions) == 0 {
		captions = []string{strings.TrimSpace(resp.Content)}
	}
	return captions, nil
}

// GenerateSummary makes a best-effort one-shot call for a single-sentence
// summary of the description. It reports ok=false on any failure and
// never returns an error; the caller degrades to "no summary".
func (g *Generator) GenerateSummary(ctx context.Context, description, language string) (string, bool) {
	prompt := BuildSummaryPrompt(description, language)

	resp, err := g.provider.Complete(ctx, &llm.CompletionRequest{
		Model: g.model,
		Messages: []llm.Message{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", false
	}

	summary := strings.TrimSpace(resp.Content)
	if summary == "" {
		return "", false
	}
	return summary, true
}
