package domain

import (
	"fmt"
	"time"
)

// SuggestedAction is an AI-proposed candidate commitment, pending human
// acceptance. DueDate is the raw string from the model; it is parsed only
// when the suggestion is accepted, and dropped if unparseable.
type SuggestedAction struct {
	Title        string              `json:"title"`
	Direction    CommitmentDirection `json:"direction"`
	Counterparty *string             `json:"counterparty,omitempty"`
	DueDate      *string             `json:"due_date,omitempty"`
	Notes        *string             `json:"notes,omitempty"`
	Importance   *int                `json:"importance,omitempty"`
	Urgency      *int                `json:"urgency,omitempty"`
}

// Validate checks the shape constraints the AI gateway enforces on every
// suggested action in a response.
func (a SuggestedAction) Validate() error {
	if a.Title == "" {
		return fmt.Errorf("suggested action: title is empty")
	}
	if !a.Direction.IsValid() {
		return fmt.Errorf("suggested action %q: invalid direction %q", a.Title, a.Direction)
	}
	if a.Importance != nil && (*a.Importance < MinPriority || *a.Importance > MaxPriority) {
		return fmt.Errorf("suggested action %q: importance %d out of range", a.Title, *a.Importance)
	}
	if a.Urgency != nil && (*a.Urgency < MinPriority || *a.Urgency > MaxPriority) {
		return fmt.Errorf("suggested action %q: urgency %d out of range", a.Title, *a.Urgency)
	}
	return nil
}

// ParseDueDate parses the suggestion's due date as a calendar date
// (YYYY-MM-DD, with RFC 3339 tolerated). Returns nil when absent or
// unparseable; a bad date never fails the suggestion.
func (a SuggestedAction) ParseDueDate() *time.Time {
	if a.DueDate == nil || *a.DueDate == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", *a.DueDate); err == nil {
		t = t.UTC()
		return &t
	}
	if t, err := time.Parse(time.RFC3339, *a.DueDate); err == nil {
		t = t.UTC()
		return &t
	}
	return nil
}

// EntrySummary is the validated result of the summarize-entry gateway call.
type EntrySummary struct {
	Summary          string
	KeyDecisions     []string
	OpenQuestions    []string
	SuggestedActions []SuggestedAction
}

// PrepBriefing is the validated result of the prep-briefing gateway call.
type PrepBriefing struct {
	Briefing      string
	TalkingPoints []string
}

// ReflectionPrompts is the validated result of the reflection-prompts call.
type ReflectionPrompts struct {
	Questions   []string
	Suggestions []string
}

// PrepContextEntry is one recent entry condensed for the prep-briefing prompt.
// Content prefers the AI summary, then raw content, then title; never empty.
type PrepContextEntry struct {
	OccurredAt time.Time `json:"occurred_at"`
	Kind       EntryKind `json:"kind"`
	Content    string    `json:"content"`
}
