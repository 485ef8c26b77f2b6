// Package gen builds mode-specific prompts and invokes the generative
// backend. Backend failures never reach the caller as errors; they
// resolve to a short string carrying the ErrorPrefix marker.
package gen

import (
	"context"
	"fmt"
	"strings"

	"studybot/internal/models"
)

// ErrorPrefix marks a generation result that is an error notice rather
// than genuine content
const ErrorPrefix = "Error:"

// GenerationFailed is returned in place of content whenever the backend
// is unreachable or produced an unusable response
const GenerationFailed = "Error: AI generation failed."

// Generator produces text for a mode and extracted input
type Generator interface {
	Generate(ctx context.Context, mode models.Mode, text string) string
}

// IsError reports whether a generation result is an error notice
func IsError(result string) bool {
	return strings.HasPrefix(result, ErrorPrefix)
}

// BuildPrompt returns the backend instruction for the given mode with
// the raw material embedded
func BuildPrompt(mode models.Mode, text string) string {
	switch mode {
	case models.ModeFlashcards:
		return fmt.Sprintf("Create clear, concise flashcards from the material below. Output as question → answer pairs, each pair separated by a blank line.\n\nMaterial:\n%s", text)
	case models.ModeNotes:
		return fmt.Sprintf("Create structured study notes from the text below. Use headings, bullet points and concise explanations.\n\nMaterial:\n%s", text)
	case models.ModeQuiz:
		return fmt.Sprintf("Create an exam-style quiz from the material below. Provide 8-12 multiple choice questions with four options each and mark the correct answer.\n\nMaterial:\n%s", text)
	default:
		return fmt.Sprintf("Process this text (%s):\n\n%s", mode, text)
	}
}
