// Package prep generates an AI briefing ahead of engaging with a project.
// Read-only: nothing it produces is persisted.
package prep

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
)

// recentEntryLimit bounds how much project history goes into the prompt.
const recentEntryLimit = 10

type projectRepo interface {
	GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
}

type entryRepo interface {
	List(ctx context.Context, userID uuid.UUID, f domain.EntryFilter) ([]*domain.Entry, error)
}

type commitmentRepo interface {
	List(ctx context.Context, userID uuid.UUID, f domain.CommitmentFilter) ([]*domain.Commitment, error)
}

type aiGateway interface {
	GeneratePrepBriefing(ctx context.Context, projectName string, entries []domain.PrepContextEntry, commitments []*domain.Commitment) (*domain.PrepBriefing, error)
}

// Service builds prep briefings.
type Service struct {
	projects    projectRepo
	entries     entryRepo
	commitments commitmentRepo
	ai          aiGateway
	log         *slog.Logger
}

// NewService creates a new Prep service.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	entries entryRepo,
	commitments commitmentRepo,
	ai aiGateway,
) *Service {
	return &Service{
		projects:    projects,
		entries:     entries,
		commitments: commitments,
		ai:          ai,
		log:         log.With("service", "prep"),
	}
}
