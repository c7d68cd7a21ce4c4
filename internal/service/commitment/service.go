// Package commitment manages tracked promises after capture: listing,
// manual creation, and status/field updates. The service owns the invariant
// that CompletedAt is set exactly when status is done.
package commitment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
)

type commitmentRepo interface {
	Create(ctx context.Context, userID uuid.UUID, c *domain.Commitment) (*domain.Commitment, error)
	GetByID(ctx context.Context, userID, commitmentID uuid.UUID) (*domain.Commitment, error)
	List(ctx context.Context, userID uuid.UUID, f domain.CommitmentFilter) ([]*domain.Commitment, error)
	Update(ctx context.Context, userID, commitmentID uuid.UUID, params domain.CommitmentUpdateParams) (*domain.Commitment, error)
}

// Service provides commitment management operations.
type Service struct {
	commitments commitmentRepo
	log         *slog.Logger

	// now is stubbed in tests.
	now func() time.Time
}

// NewService creates a new Commitment service.
func NewService(log *slog.Logger, commitments commitmentRepo) *Service {
	return &Service{
		commitments: commitments,
		log:         log.With("service", "commitment"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}
