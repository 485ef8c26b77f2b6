package models

import "time"

// Mode is the requested transformation of extracted text.
type Mode string

const (
	ModeFlashcards Mode = "flashcards"
	ModeNotes      Mode = "notes"
	ModeQuiz       Mode = "quiz"
)

// ParseMode returns the Mode for a callback payload value, or false
// when the value is not one of the three supported modes.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeFlashcards, ModeNotes, ModeQuiz:
		return Mode(s), true
	}
	return "", false
}

// GenerationRecord represents one persisted generation result
type GenerationRecord struct {
	UserID     int64
	Task       Mode
	RawText    string
	ResultText string
	CreatedAt  time.Time
}
