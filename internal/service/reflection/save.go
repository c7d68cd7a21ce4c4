package reflection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/pkg/ctxutil"
)

// SaveInput holds a finished reflection. Stats and AIQuestions are expected
// to come back unchanged from a prior GeneratePrompts call; ad-hoc
// reflections may omit period and stats entirely.
type SaveInput struct {
	ProjectID   *uuid.UUID
	EntryID     *uuid.UUID
	Period      *domain.ReflectionPeriod
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Stats       map[string]int
	Answers     []domain.QA
	AIQuestions []string
}

// Validate checks all fields and collects all errors.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Answers) == 0 && len(i.AIQuestions) == 0 {
		errs = append(errs, domain.FieldError{Field: "answers", Message: "at least one answer or question is required"})
	}
	for idx, qa := range i.Answers {
		if qa.Question == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("answers[%d].question", idx),
				Message: "required",
			})
		}
	}

	probe := domain.Reflection{
		Period:      i.Period,
		PeriodStart: i.PeriodStart,
		PeriodEnd:   i.PeriodEnd,
	}
	if err := probe.ValidatePeriod(); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			errs = append(errs, vErr.Errors...)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Save persists a reflection. Reflections are write-once; there is no update
// path.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.Reflection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	refl, err := s.reflections.Create(ctx, userID, &domain.Reflection{
		ProjectID:   input.ProjectID,
		EntryID:     input.EntryID,
		Period:      input.Period,
		PeriodStart: input.PeriodStart,
		PeriodEnd:   input.PeriodEnd,
		Stats:       input.Stats,
		Answers:     input.Answers,
		AIQuestions: input.AIQuestions,
	})
	if err != nil {
		return nil, fmt.Errorf("save reflection: %w", err)
	}

	s.log.InfoContext(ctx, "reflection saved",
		slog.String("user_id", userID.String()),
		slog.String("reflection_id", refl.ID.String()),
		slog.Int("answers", len(refl.Answers)),
	)

	return refl, nil
}

// Get returns one of the caller's reflections.
func (s *Service) Get(ctx context.Context, reflectionID uuid.UUID) (*domain.Reflection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if reflectionID == uuid.Nil {
		return nil, domain.NewValidationError("reflection_id", "required")
	}

	return s.reflections.GetByID(ctx, userID, reflectionID)
}

// List returns the caller's reflections matching the filter, newest first.
func (s *Service) List(ctx context.Context, filter domain.ReflectionFilter) ([]*domain.Reflection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.reflections.List(ctx, userID, filter)
}
