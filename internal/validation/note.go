package validation

import (
	"errors"
	"unicode/utf8"
)

// MaxTextLength is measured in characters, not bytes.
const MaxTextLength = 10000

var (
	ErrInvalidType      = errors.New("type must be one of: note, memo, reminder")
	ErrInvalidFrequency = errors.New("frequency must be one of: never, daily, weekly, monthly, quarterly, yearly")
	ErrTextTooLong      = errors.New("text must not exceed 10000 characters")
)

var noteTypes = map[string]bool{
	"note":     true,
	"memo":     true,
	"reminder": true,
}

var frequencies = map[string]bool{
	"never":     true,
	"daily":     true,
	"weekly":    true,
	"monthly":   true,
	"quarterly": true,
	"yearly":    true,
}

// ValidateNote checks a candidate note's constrained fields before it is
// persisted. The type is always required; frequency and text may be nil when
// the payload did not supply them. A missing frequency defaults to "never"
// downstream.
func ValidateNote(noteType string, frequency, text *string) error {
	if !noteTypes[noteType] {
		return ErrInvalidType
	}

	if frequency != nil && !frequencies[*frequency] {
		return ErrInvalidFrequency
	}

	if text != nil && utf8.RuneCountInString(*text) > MaxTextLength {
		return ErrTextTooLong
	}

	return nil
}
