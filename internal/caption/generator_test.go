package caption

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ysaito/capgen/internal/llm"
)

// stubProvider returns a canned response and records every request.
type stubProvider struct {
	response string
	err      error
	requests []*llm.CompletionRequest
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{Content: s.response, Model: req.Model}, nil
}

func (s *stubProvider) Ping(context.Context) error { return nil }

func beachRequest(variants int) *Request {
	return &Request{
		Description: "Weekend at the beach",
		Platform:    "Instagram",
		Tone:        "Casual",
		Language:    "English",
		Variants:    variants,
	}
}

func TestGenerateCaptionsEndToEnd(t *testing.T) {
	lines := []string{
		"1. Salt in the air #beachlife #weekend",
		"2. Chasing waves all day #ocean",
		"3. Sunset state of mind #golden",
		"4. Toes in the sand #relax #vibes",
		"5. Best kind of weekend #beach",
	}
	stub := &stubProvider{response: strings.Join(lines, "\n")}
	gen := NewGenerator(stub, "gpt-4o")

	captions, err := gen.GenerateCaptions(context.Background(), beachRequest(5))
	if err != nil {
		t.Fatalf("GenerateCaptions() error = %v", err)
	}
	if len(captions) != 5 {
		t.Fatalf("got %d captions, want 5", len(captions))
	}
	for i, c := range captions {
		want := strings.TrimPrefix(lines[i], fmt.Sprintf("%d. ", i+1))
		if c != want {
			t.Errorf("caption[%d] = %q, want %q", i, c, want)
		}
	}

	block := CopyBlock(captions, 5)
	want := strings.Join(lines, "\n")
	if block != want {
		t.Errorf("CopyBlock() = %q, want %q", block, want)
	}
}

func TestGenerateCaptionsRequestParameters(t *testing.T) {
	stub := &stubProvider{response: "1. ok #tag"}
	gen := NewGenerator(stub, "gpt-4o")

	if _, err := gen.GenerateCaptions(context.Background(), beachRequest(3)); err != nil {
		t.Fatalf("GenerateCaptions() error = %v", err)
	}
	if len(stub.requests) != 1 {
		t.Fatalf("provider called %d times, want 1", len(stub.requests))
	}

	req := stub.requests[0]
	if req.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", req.Model)
	}
	if req.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", req.Temperature)
	}
	if req.MaxTokens != 400 {
		t.Errorf("MaxTokens = %d, want 400", req.MaxTokens)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
		t.Errorf("Messages = %+v, want system then user", req.Messages)
	}
}

func TestGenerateCaptionsEmptyDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{name: "empty", description: ""},
		{name: "whitespace", description: "   \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubProvider{response: "1. never used"}
			gen := NewGenerator(stub, "gpt-4o")

			req := beachRequest(5)
			req.Description = tt.description

			_, err := gen.GenerateCaptions(context.Background(), req)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if len(stub.requests) != 0 {
				t.Error("validation failure still hit the provider")
			}
		})
	}
}

func TestGenerateCaptionsProviderFailure(t *testing.T) {
	cause := errors.New("OpenAI error (status 429): rate limit")
	stub := &stubProvider{err: cause}
	gen := NewGenerator(stub, "gpt-4o")

	_, err := gen.GenerateCaptions(context.Background(), beachRequest(5))
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("error = %v, want *GenerationError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("GenerationError does not wrap the underlying cause")
	}
	if !strings.Contains(err.Error(), "rate limit") {
		t.Errorf("error text %q missing cause", err.Error())
	}
}

func TestGenerateCaptionsFallbackToRawText(t *testing.T) {
	stub := &stubProvider{response: "  \nSorry, here is one idea instead.\n  "}
	gen := NewGenerator(stub, "gpt-4o")

	captions, err := gen.GenerateCaptions(context.Background(), beachRequest(5))
	if err != nil {
		t.Fatalf("GenerateCaptions() error = %v", err)
	}
	if len(captions) != 1 || captions[0] != "Sorry, here is one idea instead." {
		t.Errorf("captions = %#v, want single passed-through line", captions)
	}

	// Even a pure-whitespace completion falls back to the trimmed raw
	// text: success never yields an empty list.
	stub = &stubProvider{response: "   \n\t  "}
	gen = NewGenerator(stub, "gpt-4o")
	captions, err = gen.GenerateCaptions(context.Background(), beachRequest(5))
	if err != nil {
		t.Fatalf("GenerateCaptions() error = %v", err)
	}
	if len(captions) != 1 || captions[0] != "" {
		t.Errorf("captions = %#v, want the single trimmed fallback caption", captions)
	}
}

func TestGenerateCaptionsDisplayTruncation(t *testing.T) {
	var lines []string
	for i := 1; i <= 8; i++ {
		lines = append(lines, fmt.Sprintf("%d. Caption number %d #tag", i, i))
	}
	stub := &stubProvider{response: strings.Join(lines, "\n")}
	gen := NewGenerator(stub, "gpt-4o")

	captions, err := gen.GenerateCaptions(context.Background(), beachRequest(3))
	if err != nil {
		t.Fatalf("GenerateCaptions() error = %v", err)
	}
	if len(captions) != 8 {
		t.Fatalf("got %d captions, want all 8 before display truncation", len(captions))
	}

	shown := Limit(captions, 3)
	if len(shown) != 3 {
		t.Fatalf("Limit() kept %d captions, want 3", len(shown))
	}
	block := CopyBlock(captions, 3)
	if strings.Count(block, "\n") != 2 {
		t.Errorf("CopyBlock() = %q, want exactly 3 lines", block)
	}
	if !strings.HasPrefix(block, "1. Caption number 1") {
		t.Errorf("CopyBlock() = %q, want renumbered from 1", block)
	}
}

func TestGenerateSummary(t *testing.T) {
	stub := &stubProvider{response: "  A relaxed weekend spent by the sea.  \n"}
	gen := NewGenerator(stub, "gpt-4o")

	summary, ok := gen.GenerateSummary(context.Background(), "Weekend at the beach", "English")
	if !ok {
		t.Fatal("GenerateSummary() ok = false, want true")
	}
	if summary != "A relaxed weekend spent by the sea." {
		t.Errorf("summary = %q, want trimmed sentence", summary)
	}
}

func TestGenerateSummaryDegradesSilently(t *testing.T) {
	tests := []struct {
		name string
		stub *stubProvider
	}{
		{name: "provider error", stub: &stubProvider{err: errors.New("boom")}},
		{name: "blank response", stub: &stubProvider{response: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(tt.stub, "gpt-4o")
			summary, ok := gen.GenerateSummary(context.Background(), "Weekend at the beach", "English")
			if ok || summary != "" {
				t.Errorf("GenerateSummary() = (%q, %v), want (\"\", false)", summary, ok)
			}
		})
	}
}

func TestLimit(t *testing.T) {
	captions := []string{"a", "b", "c"}

	if got := Limit(captions, 2); len(got) != 2 {
		t.Errorf("Limit(3 captions, 2) kept %d", len(got))
	}
	if got := Limit(captions, 5); len(got) != 3 {
		t.Errorf("Limit(3 captions, 5) kept %d", len(got))
	}
	if got := Limit(nil, 3); len(got) != 0 {
		t.Errorf("Limit(nil, 3) kept %d", len(got))
	}
}

func TestCopyBlockEmpty(t *testing.T) {
	if got := CopyBlock(nil, 5); got != "" {
		t.Errorf("CopyBlock(nil) = %q, want empty", got)
	}
}
