// Package reflection drives the periodic review loop: it snapshots activity
// stats for a period, asks the AI gateway for tailored questions, and saves
// the finished reflection. Reflections are immutable once saved.
package reflection

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
)

type reflectionRepo interface {
	Create(ctx context.Context, userID uuid.UUID, refl *domain.Reflection) (*domain.Reflection, error)
	GetByID(ctx context.Context, userID, reflectionID uuid.UUID) (*domain.Reflection, error)
	List(ctx context.Context, userID uuid.UUID, f domain.ReflectionFilter) ([]*domain.Reflection, error)
}

type entryRepo interface {
	CountInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)
}

type commitmentRepo interface {
	CountCompletedInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)
}

type aiGateway interface {
	GenerateReflectionPrompts(ctx context.Context, timeframeLabel string, stats map[string]int) (*domain.ReflectionPrompts, error)
}

// Service provides reflection prompt generation and persistence.
type Service struct {
	reflections reflectionRepo
	entries     entryRepo
	commitments commitmentRepo
	ai          aiGateway
	log         *slog.Logger
}

// NewService creates a new Reflection service.
func NewService(log *slog.Logger, reflections reflectionRepo, entries entryRepo, commitments commitmentRepo, ai aiGateway) *Service {
	return &Service{
		reflections: reflections,
		entries:     entries,
		commitments: commitments,
		ai:          ai,
		log:         log.With("service", "reflection"),
	}
}
