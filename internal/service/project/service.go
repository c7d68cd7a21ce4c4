// Package project provides project CRUD operations. Deletion is not offered;
// projects are archived via status.
package project

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
)

type projectRepo interface {
	Create(ctx context.Context, userID uuid.UUID, p *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, userID uuid.UUID, f domain.ProjectFilter) ([]*domain.Project, error)
	Update(ctx context.Context, userID, projectID uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error)
}

// Service provides project management operations.
type Service struct {
	projects projectRepo
	log      *slog.Logger
}

// NewService creates a new Project service.
func NewService(log *slog.Logger, projects projectRepo) *Service {
	return &Service{
		projects: projects,
		log:      log.With("service", "project"),
	}
}
