package domain

import (
	"time"

	"github.com/google/uuid"
)

// QA is one answered reflection question.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Reflection is a periodic or ad-hoc review. Immutable after creation.
//
// Invariant: when Period is set, PeriodStart and PeriodEnd are both set and
// PeriodStart <= PeriodEnd.
type Reflection struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ProjectID   *uuid.UUID
	EntryID     *uuid.UUID
	Period      *ReflectionPeriod
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Stats       map[string]int
	Answers     []QA
	AIQuestions []string
	CreatedAt   time.Time
}

// ValidatePeriod checks the period invariant.
func (r *Reflection) ValidatePeriod() error {
	if r.Period == nil {
		return nil
	}
	if !r.Period.IsValid() {
		return NewValidationError("period_type", "must be one of week, month, quarter")
	}
	if r.PeriodStart == nil || r.PeriodEnd == nil {
		return NewValidationError("period", "period_start and period_end are required when period_type is set")
	}
	if r.PeriodStart.After(*r.PeriodEnd) {
		return NewValidationError("period", "period_start must not be after period_end")
	}
	return nil
}
