// Package insight runs the entry summarization workflow: AI summary
// persistence and curation of AI-suggested commitments into real ones.
package insight

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
)

type entryRepo interface {
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error)
	UpdateAISummary(ctx context.Context, userID, entryID uuid.UUID, summary string, actions []domain.SuggestedAction) error
}

type projectRepo interface {
	GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
}

type commitmentRepo interface {
	CreateBatch(ctx context.Context, userID uuid.UUID, commitments []*domain.Commitment) ([]*domain.Commitment, error)
}

type aiGateway interface {
	SummarizeEntry(ctx context.Context, rawText, projectContext string) (*domain.EntrySummary, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides summarization and suggestion-acceptance operations.
type Service struct {
	entries     entryRepo
	projects    projectRepo
	commitments commitmentRepo
	ai          aiGateway
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Insight service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	projects projectRepo,
	commitments commitmentRepo,
	ai aiGateway,
	tx txManager,
) *Service {
	return &Service{
		entries:     entries,
		projects:    projects,
		commitments: commitments,
		ai:          ai,
		tx:          tx,
		log:         log.With("service", "insight"),
	}
}
