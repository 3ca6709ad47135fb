package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ysaito/capgen/internal/caption"
)

func resultApp(variants int) *App {
	a := &App{
		view:   viewResult,
		width:  80,
		height: 40,
		state:  newState(),
	}
	a.state.request = &caption.Request{
		Description: "Weekend at the beach",
		Platform:    "Instagram",
		Tone:        "Casual",
		Language:    "English",
		Variants:    variants,
	}
	return a
}

func TestRenderResultTruncatesToRequestedVariants(t *testing.T) {
	a := resultApp(3)
	for i := 1; i <= 8; i++ {
		a.state.captions = append(a.state.captions, fmt.Sprintf("Caption number %d #tag", i))
	}
	a.state.summaryDone = true

	out := a.View()
	if !strings.Contains(out, "Caption number 3") {
		t.Error("third caption missing from the result view")
	}
	if strings.Contains(out, "Caption number 4") {
		t.Error("result view shows captions beyond the requested count")
	}
	if !strings.Contains(out, "Instagram") {
		t.Error("request info line missing from the result view")
	}
	if !strings.Contains(out, "Summary not available.") {
		t.Error("summary notice missing from the result view")
	}
}

func TestRenderResultSummaryStates(t *testing.T) {
	a := resultApp(3)
	a.state.captions = []string{"One #tag"}

	out := a.View()
	if !strings.Contains(out, "Summarizing the description...") {
		t.Error("pending summary line missing")
	}

	a.state.summaryDone = true
	a.state.summaryOK = true
	a.state.summary = "A relaxed weekend spent by the sea."
	out = a.View()
	if !strings.Contains(out, "A relaxed weekend spent by the sea.") {
		t.Error("summary text missing")
	}
}
