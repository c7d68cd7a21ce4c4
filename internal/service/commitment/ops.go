package commitment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/pkg/ctxutil"
)

// Create creates an open, manually-entered commitment.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Commitment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	importance := input.Importance
	if importance == 0 {
		importance = domain.DefaultImportance
	}
	urgency := input.Urgency
	if urgency == 0 {
		urgency = domain.DefaultUrgency
	}

	commitment, err := s.commitments.Create(ctx, userID, &domain.Commitment{
		ProjectID:    input.ProjectID,
		Title:        strings.TrimSpace(input.Title),
		Direction:    input.Direction,
		Status:       domain.CommitmentStatusOpen,
		Counterparty: input.Counterparty,
		DueDate:      input.DueDate,
		Importance:   importance,
		Urgency:      urgency,
		Notes:        input.Notes,
		AIGenerated:  false,
	})
	if err != nil {
		return nil, fmt.Errorf("create commitment: %w", err)
	}

	s.log.InfoContext(ctx, "commitment created",
		slog.String("user_id", userID.String()),
		slog.String("commitment_id", commitment.ID.String()),
	)

	return commitment, nil
}

// Get returns one of the caller's commitments.
func (s *Service) Get(ctx context.Context, commitmentID uuid.UUID) (*domain.Commitment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if commitmentID == uuid.Nil {
		return nil, domain.NewValidationError("commitment_id", "required")
	}

	return s.commitments.GetByID(ctx, userID, commitmentID)
}

// List returns the caller's commitments matching the filter, due-soonest
// first.
func (s *Service) List(ctx context.Context, filter domain.CommitmentFilter) ([]*domain.Commitment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.commitments.List(ctx, userID, filter)
}

// Update applies a partial update. A transition to done stamps CompletedAt;
// a transition to any other status clears it. Updates without a status change
// leave CompletedAt alone.
func (s *Service) Update(ctx context.Context, commitmentID uuid.UUID, input UpdateInput) (*domain.Commitment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if commitmentID == uuid.Nil {
		return nil, domain.NewValidationError("commitment_id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CommitmentUpdateParams{
		Status:       input.Status,
		Counterparty: input.Counterparty,
		DueDate:      input.DueDate,
		ClearDueDate: input.ClearDueDate,
		Importance:   input.Importance,
		Urgency:      input.Urgency,
		Notes:        input.Notes,
	}
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		params.Title = &trimmed
	}
	if input.Status != nil {
		params.SetCompletedAt = true
		if *input.Status == domain.CommitmentStatusDone {
			completedAt := s.now()
			params.CompletedAt = &completedAt
		}
	}

	commitment, err := s.commitments.Update(ctx, userID, commitmentID, params)
	if err != nil {
		return nil, fmt.Errorf("update commitment: %w", err)
	}

	if input.Status != nil {
		s.log.InfoContext(ctx, "commitment status changed",
			slog.String("user_id", userID.String()),
			slog.String("commitment_id", commitmentID.String()),
			slog.String("status", input.Status.String()),
		)
	}

	return commitment, nil
}
