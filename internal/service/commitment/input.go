package commitment

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
)

// MaxTitleLen bounds commitment titles.
const MaxTitleLen = 200

// CreateInput holds the parameters for manually creating a commitment.
type CreateInput struct {
	ProjectID    uuid.UUID
	Title        string
	Direction    domain.CommitmentDirection
	Counterparty *string
	DueDate      *time.Time
	Notes        *string
	// Importance and Urgency default to 3 when zero.
	Importance int
	Urgency    int
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > MaxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be i_owe or waiting_for"})
	}
	if i.Importance != 0 && (i.Importance < domain.MinPriority || i.Importance > domain.MaxPriority) {
		errs = append(errs, domain.FieldError{Field: "importance", Message: "must be between 1 and 5"})
	}
	if i.Urgency != 0 && (i.Urgency < domain.MinPriority || i.Urgency > domain.MaxPriority) {
		errs = append(errs, domain.FieldError{Field: "urgency", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial commitment update; nil fields are left
// unchanged. ClearDueDate unsets the due date.
type UpdateInput struct {
	Title        *string
	Status       *domain.CommitmentStatus
	Counterparty *string
	DueDate      *time.Time
	ClearDueDate bool
	Importance   *int
	Urgency      *int
	Notes        *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		}
		if len(title) > MaxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be open, done, blocked or dropped"})
	}
	if i.Importance != nil && (*i.Importance < domain.MinPriority || *i.Importance > domain.MaxPriority) {
		errs = append(errs, domain.FieldError{Field: "importance", Message: "must be between 1 and 5"})
	}
	if i.Urgency != nil && (*i.Urgency < domain.MinPriority || *i.Urgency > domain.MaxPriority) {
		errs = append(errs, domain.FieldError{Field: "urgency", Message: "must be between 1 and 5"})
	}
	if i.ClearDueDate && i.DueDate != nil {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "cannot set and clear at once"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
