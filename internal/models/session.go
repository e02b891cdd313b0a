package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultNote is used when a session is saved with an empty label.
const DefaultNote = "Untitled session"

// Session is one completed timer run. Sessions are never edited after
// creation, only created or deleted.
type Session struct {
	ID              string    `json:"id"`
	Note            string    `json:"note"`
	DurationSeconds int       `json:"durationSeconds"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewSession builds a session with a fresh random identifier. The note is
// trimmed, and an empty note becomes DefaultNote.
func NewSession(note string, durationSeconds int, createdAt time.Time) Session {
	note = strings.TrimSpace(note)
	if note == "" {
		note = DefaultNote
	}

	return Session{
		ID:              uuid.New().String(),
		Note:            note,
		DurationSeconds: durationSeconds,
		CreatedAt:       createdAt,
	}
}
