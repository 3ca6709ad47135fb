package caption

import (
	"fmt"
	"strings"
)

// Variant count and description bounds enforced by the form layer.
const (
	MinVariants       = 3
	MaxVariants       = 8
	DefaultVariants   = 5
	MaxDescriptionLen = 500
)

// Platforms lists the social networks a caption can target.
var Platforms = []string{
	"Instagram",
	"Twitter",
	"X",
	"Facebook",
	"TikTok",
	"LinkedIn",
	"Threads",
}

// Tones lists the supported writing tones.
var Tones = []string{
	"Casual",
	"Emotional",
	"Professional",
	"Humorous",
	"Simple",
	"Passionate",
}

// Languages lists the supported output languages.
var Languages = []string{
	"Japanese",
	"English",
}

// Request holds one form submission. The form layer guarantees the
// enum fields come from the tables above, the description fits
// MaxDescriptionLen, and Variants is within [MinVariants, MaxVariants].
type Request struct {
	Description string
	Platform    string
	Tone        string
	Language    string
	Variants    int
}

// Limit returns at most the first n captions. Parsing never trims the
// model's output; the cut happens here, at display time.
func Limit(captions []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if len(captions) > n {
		return captions[:n]
	}
	return captions
}

// CopyBlock renders the first n captions as a single paste-ready block,
// one "N. caption" line each.
func CopyBlock(captions []string, n int) string {
	var lines []string
	for i, c := range Limit(captions, n) {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, c))
	}
	return strings.Join(lines, "\n")
}
