// Package dashboard builds the main dashboard view: weekly focus ranking,
// idle-project detection, and pending counters.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/config"
	"github.com/hi5jack/compass-backend/internal/domain"
)

type commitmentRepo interface {
	List(ctx context.Context, userID uuid.UUID, f domain.CommitmentFilter) ([]*domain.Commitment, error)
}

type projectRepo interface {
	List(ctx context.Context, userID uuid.UUID, f domain.ProjectFilter) ([]*domain.Project, error)
}

type entryRepo interface {
	CountDecisionsNeedingReview(ctx context.Context, userID uuid.UUID) (int, error)
}

type reflectionRepo interface {
	LatestPeriodEnd(ctx context.Context, userID uuid.UUID, period domain.ReflectionPeriod) (*time.Time, error)
}

// Service aggregates the dashboard from independent sub-queries.
type Service struct {
	commitments commitmentRepo
	projects    projectRepo
	entries     entryRepo
	reflections reflectionRepo
	cfg         config.DashboardConfig
	log         *slog.Logger

	// now is stubbed in tests.
	now func() time.Time
}

// NewService creates a new Dashboard service.
func NewService(
	log *slog.Logger,
	commitments commitmentRepo,
	projects projectRepo,
	entries entryRepo,
	reflections reflectionRepo,
	cfg config.DashboardConfig,
) *Service {
	return &Service{
		commitments: commitments,
		projects:    projects,
		entries:     entries,
		reflections: reflections,
		cfg:         cfg,
		log:         log.With("service", "dashboard"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}
