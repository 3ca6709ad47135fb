package caption

import "fmt"

// Prompt is a system/user message pair for the completion API.
type Prompt struct {
	System string
	User   string
}

const captionSystemTemplate = `You are an expert copywriter for social media.
Given a content description, generate %d unique short captions tailored for %s in a %s tone.
Each caption should:
- Fit typical length constraints of %s (keep it concise)
- Include 1-3 relevant hashtags at the end
- Be distinct from each other
- Be written in %s
Return the captions as a numbered list (1., 2., ...) with the caption only (no extra explanation).`

const summarySystemTemplate = `You are an expert at writing summaries in %s.
Read the content description and restate it as one short, natural sentence in %s that a reader grasps immediately.
Return only the sentence.`

// BuildCaptionPrompt maps a request onto the caption instruction template.
// Pure text substitution; identical requests yield identical prompts.
func BuildCaptionPrompt(req *Request) Prompt {
	return Prompt{
		System: fmt.Sprintf(captionSystemTemplate,
			req.Variants, req.Platform, req.Tone, req.Platform, req.Language),
		User: "Content description:\n" + req.Description,
	}
}

// BuildSummaryPrompt asks for a single-sentence summary of the
// description in the given language.
func BuildSummaryPrompt(description, language string) Prompt {
	return Prompt{
		System: fmt.Sprintf(summarySystemTemplate, language, language),
		User:   description,
	}
}
