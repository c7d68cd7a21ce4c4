package insight

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/pkg/ctxutil"
)

// SummarizeResult is returned to the caller for human curation of the
// suggested actions.
type SummarizeResult struct {
	Summary          string
	KeyDecisions     []string
	OpenQuestions    []string
	SuggestedActions []domain.SuggestedAction
}

// Summarize calls the AI gateway over the entry's content and persists the
// summary and suggested actions back onto the entry, overwriting any prior
// summary. Safe to re-run.
//
// If the gateway fails, the entry is untouched and the error matches
// domain.ErrAIUnavailable so transport can tell the user the entry is safe.
func (s *Service) Summarize(ctx context.Context, entryID uuid.UUID) (*SummarizeResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if entryID == uuid.Nil {
		return nil, domain.NewValidationError("entry_id", "required")
	}

	entry, err := s.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("load entry: %w", err)
	}

	// Project context is best-effort framing; a missing project is not an
	// error, the prompt just goes out without context.
	projectContext := ""
	if project, err := s.projects.GetByID(ctx, userID, entry.ProjectID); err == nil {
		projectContext = "Project: " + project.Name
		if project.Description != nil && *project.Description != "" {
			projectContext += "\n" + *project.Description
		}
	}

	rawText := entry.Title
	if entry.RawContent != nil && *entry.RawContent != "" {
		rawText = *entry.RawContent
	}

	summary, err := s.ai.SummarizeEntry(ctx, rawText, projectContext)
	if err != nil {
		return nil, fmt.Errorf("summarize entry %s: %w", entryID, err)
	}

	if err := s.entries.UpdateAISummary(ctx, userID, entryID, summary.Summary, summary.SuggestedActions); err != nil {
		return nil, fmt.Errorf("persist summary: %w", err)
	}

	s.log.InfoContext(ctx, "entry summarized",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
		slog.Int("suggested_actions", len(summary.SuggestedActions)),
	)

	return &SummarizeResult{
		Summary:          summary.Summary,
		KeyDecisions:     summary.KeyDecisions,
		OpenQuestions:    summary.OpenQuestions,
		SuggestedActions: summary.SuggestedActions,
	}, nil
}
