package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/pkg/ctxutil"
)

// Create creates a new active project for the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == 0 {
		priority = domain.DefaultImportance
	}

	project, err := s.projects.Create(ctx, userID, &domain.Project{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Type:        input.Type,
		Status:      domain.ProjectStatusActive,
		Priority:    priority,
		OwnerNotes:  input.OwnerNotes,
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", project.ID.String()),
		slog.String("name", project.Name),
	)

	return project, nil
}

// Get returns one of the caller's projects.
func (s *Service) Get(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}

	return s.projects.GetByID(ctx, userID, projectID)
}

// List returns the caller's projects matching the filter.
func (s *Service) List(ctx context.Context, filter domain.ProjectFilter) ([]*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.projects.List(ctx, userID, filter)
}

// Update applies a partial update to one of the caller's projects.
func (s *Service) Update(ctx context.Context, projectID uuid.UUID, input UpdateInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var name *string
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		name = &trimmed
	}

	project, err := s.projects.Update(ctx, userID, projectID, domain.ProjectUpdateParams{
		Name:        name,
		Description: input.Description,
		Type:        input.Type,
		Status:      input.Status,
		Priority:    input.Priority,
		OwnerNotes:  input.OwnerNotes,
	})
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	return project, nil
}
