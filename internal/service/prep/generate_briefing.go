package prep

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/pkg/ctxutil"
)

// Briefing bundles everything the caller needs to render a prep view.
type Briefing struct {
	Project     *domain.Project
	Entries     []domain.PrepContextEntry
	Commitments []*domain.Commitment
	Briefing    *domain.PrepBriefing
}

// GenerateBriefing fetches the project's recent history and open commitments
// concurrently, then asks the AI gateway for a briefing. Returns
// domain.ErrNotFound when the project does not exist or is not the caller's.
func (s *Service) GenerateBriefing(ctx context.Context, projectID uuid.UUID) (*Briefing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}

	project, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}

	var (
		recent      []*domain.Entry
		commitments []*domain.Commitment
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		recent, err = s.entries.List(gCtx, userID, domain.EntryFilter{
			ProjectID: &projectID,
			Kinds:     []domain.EntryKind{domain.EntryKindMeeting, domain.EntryKindUpdate, domain.EntryKindDecision},
			Limit:     recentEntryLimit,
		})
		if err != nil {
			return fmt.Errorf("load recent entries: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		open := domain.CommitmentStatusOpen
		var err error
		commitments, err = s.commitments.List(gCtx, userID, domain.CommitmentFilter{
			ProjectID: &projectID,
			Status:    &open,
		})
		if err != nil {
			return fmt.Errorf("load open commitments: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	contextEntries := make([]domain.PrepContextEntry, len(recent))
	for i, e := range recent {
		contextEntries[i] = domain.PrepContextEntry{
			OccurredAt: e.OccurredAt,
			Kind:       e.Kind,
			Content:    e.SummaryText(),
		}
	}

	briefing, err := s.ai.GeneratePrepBriefing(ctx, project.Name, contextEntries, commitments)
	if err != nil {
		return nil, fmt.Errorf("generate briefing for project %s: %w", projectID, err)
	}

	s.log.InfoContext(ctx, "briefing generated",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
		slog.Int("entries", len(contextEntries)),
		slog.Int("commitments", len(commitments)),
	)

	return &Briefing{
		Project:     project,
		Entries:     contextEntries,
		Commitments: commitments,
		Briefing:    briefing,
	}, nil
}
