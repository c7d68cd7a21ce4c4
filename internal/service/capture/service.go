// Package capture turns a user's raw capture into persisted state: an entry,
// plus an optional commitment or reflection depending on the capture kind.
package capture

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
)

type entryRepo interface {
	Create(ctx context.Context, userID uuid.UUID, e *domain.Entry) (*domain.Entry, error)
}

type commitmentRepo interface {
	Create(ctx context.Context, userID uuid.UUID, c *domain.Commitment) (*domain.Commitment, error)
}

type reflectionRepo interface {
	Create(ctx context.Context, userID uuid.UUID, r *domain.Reflection) (*domain.Reflection, error)
}

type projectRepo interface {
	TouchLastActive(ctx context.Context, userID, projectID uuid.UUID, activeAt time.Time) error
}

// Service is the single entry point of the capture pipeline.
type Service struct {
	entries     entryRepo
	commitments commitmentRepo
	reflections reflectionRepo
	projects    projectRepo
	log         *slog.Logger
}

// NewService creates a new Capture service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	commitments commitmentRepo,
	reflections reflectionRepo,
	projects projectRepo,
) *Service {
	return &Service{
		entries:     entries,
		commitments: commitments,
		reflections: reflections,
		projects:    projects,
		log:         log.With("service", "capture"),
	}
}
