package reflection

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/pkg/ctxutil"
)

// Stats snapshot keys.
const (
	statEntriesCaptured      = "entries_captured"
	statCommitmentsCompleted = "commitments_completed"
)

// GeneratePromptsInput identifies the period to reflect on.
type GeneratePromptsInput struct {
	Period      domain.ReflectionPeriod
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Validate checks all fields and collects all errors.
func (i GeneratePromptsInput) Validate() error {
	var errs []domain.FieldError

	if !i.Period.IsValid() {
		errs = append(errs, domain.FieldError{Field: "period_type", Message: "must be one of week, month, quarter"})
	}
	if i.PeriodStart.IsZero() || i.PeriodEnd.IsZero() {
		errs = append(errs, domain.FieldError{Field: "period", Message: "period_start and period_end are required"})
	} else if i.PeriodStart.After(i.PeriodEnd) {
		errs = append(errs, domain.FieldError{Field: "period", Message: "period_start must not be after period_end"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PromptsResult carries the stats snapshot alongside the generated questions
// so the client can show both and hand them back unchanged on save.
type PromptsResult struct {
	Stats       map[string]int
	Questions   []string
	Suggestions []string
}

// GeneratePrompts snapshots activity counts for the period and asks the AI
// gateway for reflection questions grounded in them. Nothing is persisted;
// the caller saves the reflection separately once answered.
func (s *Service) GeneratePrompts(ctx context.Context, input GeneratePromptsInput) (*PromptsResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Counts run over [start, end); the end bound is exclusive in both
	// repo queries.
	var entryCount, completedCount int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entryCount, err = s.entries.CountInRange(gctx, userID, input.PeriodStart, input.PeriodEnd)
		if err != nil {
			return fmt.Errorf("count entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		completedCount, err = s.commitments.CountCompletedInRange(gctx, userID, input.PeriodStart, input.PeriodEnd)
		if err != nil {
			return fmt.Errorf("count completed commitments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := map[string]int{
		statEntriesCaptured:      entryCount,
		statCommitmentsCompleted: completedCount,
	}

	prompts, err := s.ai.GenerateReflectionPrompts(ctx, timeframeLabel(input.Period), stats)
	if err != nil {
		return nil, fmt.Errorf("generate reflection prompts: %w", err)
	}

	s.log.InfoContext(ctx, "reflection prompts generated",
		slog.String("user_id", userID.String()),
		slog.String("period_type", input.Period.String()),
		slog.Int("questions", len(prompts.Questions)),
	)

	return &PromptsResult{
		Stats:       stats,
		Questions:   prompts.Questions,
		Suggestions: prompts.Suggestions,
	}, nil
}

func timeframeLabel(period domain.ReflectionPeriod) string {
	switch period {
	case domain.ReflectionPeriodWeek:
		return "the past week"
	case domain.ReflectionPeriodMonth:
		return "the past month"
	case domain.ReflectionPeriodQuarter:
		return "the past quarter"
	default:
		return "the recent period"
	}
}
