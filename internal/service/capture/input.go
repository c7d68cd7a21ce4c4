package capture

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
)

// MaxTitleLen bounds entry and commitment titles.
const MaxTitleLen = 200

// CommitmentFields carries the extra fields of a kind=commitment capture.
type CommitmentFields struct {
	Direction    domain.CommitmentDirection
	Counterparty *string
	DueDate      *time.Time
	Notes        *string
	// Importance and Urgency default to 3 when zero.
	Importance int
	Urgency    int
}

// ReflectionFields carries the extra fields of a kind=reflection capture. A
// reflection sub-record is created only when a period or at least one answer
// is present.
type ReflectionFields struct {
	Period      *domain.ReflectionPeriod
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Answers     []domain.QA
}

// Input holds the parameters of one capture.
type Input struct {
	ProjectID  uuid.UUID
	Kind       domain.CaptureKind
	Title      string
	OccurredAt *time.Time
	RawContent *string

	Commitment *CommitmentFields
	Reflection *ReflectionFields
}

// Validate checks all fields and collects all errors.
func (i Input) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown capture kind"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > MaxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if i.Kind == domain.CaptureKindCommitment {
		if i.Commitment == nil {
			errs = append(errs, domain.FieldError{Field: "commitment", Message: "required for kind commitment"})
		} else {
			errs = append(errs, i.Commitment.validate()...)
		}
	}

	if i.Reflection != nil {
		r := domain.Reflection{
			Period:      i.Reflection.Period,
			PeriodStart: i.Reflection.PeriodStart,
			PeriodEnd:   i.Reflection.PeriodEnd,
		}
		if err := r.ValidatePeriod(); err != nil {
			var vErr *domain.ValidationError
			if errors.As(err, &vErr) {
				errs = append(errs, vErr.Errors...)
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (c CommitmentFields) validate() []domain.FieldError {
	var errs []domain.FieldError

	if !c.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be i_owe or waiting_for"})
	}
	if c.Importance != 0 && (c.Importance < domain.MinPriority || c.Importance > domain.MaxPriority) {
		errs = append(errs, domain.FieldError{Field: "importance", Message: "must be between 1 and 5"})
	}
	if c.Urgency != 0 && (c.Urgency < domain.MinPriority || c.Urgency > domain.MaxPriority) {
		errs = append(errs, domain.FieldError{Field: "urgency", Message: "must be between 1 and 5"})
	}

	return errs
}

// wantsReflection reports whether the capture should produce a reflection
// sub-record.
func (r *ReflectionFields) wantsReflection() bool {
	if r == nil {
		return false
	}
	return r.Period != nil || len(r.Answers) > 0
}
