package models

import "testing"

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"flashcards", "notes", "quiz"} {
		mode, ok := ParseMode(valid)
		if !ok {
			t.Errorf("ParseMode(%q) unexpectedly rejected", valid)
		}
		if string(mode) != valid {
			t.Errorf("ParseMode(%q) = %q", valid, mode)
		}
	}

	for _, invalid := range []string{"", "Flashcards", "summary", "quiz "} {
		if _, ok := ParseMode(invalid); ok {
			t.Errorf("ParseMode(%q) unexpectedly accepted", invalid)
		}
	}
}
