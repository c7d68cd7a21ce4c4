package insight

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/pkg/ctxutil"
)

// AcceptSuggestionsInput holds the curated suggestions the user accepted.
type AcceptSuggestionsInput struct {
	ProjectID uuid.UUID
	EntryID   uuid.UUID
	Accepted  []domain.SuggestedAction
}

// Validate checks all fields and collects all errors.
func (i AcceptSuggestionsInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	for idx, a := range i.Accepted {
		if a.Title == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("accepted[%d].title", idx), Message: "required"})
		}
		if !a.Direction.IsValid() {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("accepted[%d].direction", idx), Message: "must be i_owe or waiting_for"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateCommitmentsFromSuggestions bulk-inserts one open, AI-generated
// commitment per accepted suggestion, linked to the source entry, inside one
// transaction. An empty accepted list is a no-op returning an empty slice.
//
// Per-suggestion sanitation never fails the batch: an unparseable due date is
// dropped, and an out-of-range importance or urgency falls back to 3.
func (s *Service) CreateCommitmentsFromSuggestions(ctx context.Context, input AcceptSuggestionsInput) ([]*domain.Commitment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if len(input.Accepted) == 0 {
		return []*domain.Commitment{}, nil
	}

	toCreate := make([]*domain.Commitment, 0, len(input.Accepted))
	for _, a := range input.Accepted {
		toCreate = append(toCreate, &domain.Commitment{
			ProjectID:    input.ProjectID,
			EntryID:      &input.EntryID,
			Title:        a.Title,
			Direction:    a.Direction,
			Status:       domain.CommitmentStatusOpen,
			Counterparty: a.Counterparty,
			DueDate:      a.ParseDueDate(),
			Importance:   clampPriority(a.Importance),
			Urgency:      clampPriority(a.Urgency),
			Notes:        a.Notes,
			AIGenerated:  true,
		})
	}

	var created []*domain.Commitment
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.commitments.CreateBatch(ctx, userID, toCreate)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create commitments from suggestions: %w", err)
	}

	s.log.InfoContext(ctx, "suggestions accepted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", input.EntryID.String()),
		slog.Int("created", len(created)),
	)

	return created, nil
}

// clampPriority resolves an optional 1..5 value, defaulting anything absent
// or out of range.
func clampPriority(v *int) int {
	if v == nil || *v < domain.MinPriority || *v > domain.MaxPriority {
		return domain.DefaultImportance
	}
	return *v
}
