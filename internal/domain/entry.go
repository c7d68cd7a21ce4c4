package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a timestamped record of something that happened within a project.
// AISummary and SuggestedActions stay nil until the summarization workflow
// runs; re-running it overwrites both.
type Entry struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	ProjectID        uuid.UUID
	Kind             EntryKind
	Title            string
	OccurredAt       time.Time
	RawContent       *string
	AISummary        *string
	SuggestedActions []SuggestedAction
	IsDecision       bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SummaryText returns the best available textual content of the entry:
// AI summary, then raw content, then title. Never empty.
func (e *Entry) SummaryText() string {
	if e.AISummary != nil && *e.AISummary != "" {
		return *e.AISummary
	}
	if e.RawContent != nil && *e.RawContent != "" {
		return *e.RawContent
	}
	return e.Title
}
