package capture

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/pkg/ctxutil"
)

// Capture persists the entry and then runs the dependent writes (project
// touch, optional commitment or reflection) concurrently.
//
// Entry creation is the commit point: if it fails, nothing is persisted and
// the error is returned alone. Once the entry exists, dependent failures are
// collected into a *domain.PartialCaptureError returned alongside a Result
// that still carries the entry id; the entry is never rolled back.
func (s *Service) Capture(ctx context.Context, input Input) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	occurredAt := time.Now().UTC()
	if input.OccurredAt != nil {
		occurredAt = input.OccurredAt.UTC()
	}

	entry, err := s.entries.Create(ctx, userID, &domain.Entry{
		ProjectID:  input.ProjectID,
		Kind:       input.Kind.EntryKind(),
		Title:      strings.TrimSpace(input.Title),
		OccurredAt: occurredAt,
		RawContent: input.RawContent,
		IsDecision: input.Kind == domain.CaptureKindDecision,
	})
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	result := &Result{EntryID: entry.ID}

	// Dependent writes need the entry id but not each other; all outcomes are
	// collected, not short-circuited.
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		stepFails []domain.CaptureStepError
	)
	fail := func(step string, err error) {
		mu.Lock()
		stepFails = append(stepFails, domain.CaptureStepError{Step: step, Err: err})
		mu.Unlock()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.projects.TouchLastActive(ctx, userID, input.ProjectID, occurredAt); err != nil {
			fail("touch_project", err)
		}
	}()

	if input.Kind == domain.CaptureKindCommitment {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := s.createCommitment(ctx, userID, entry, input.Commitment)
			if err != nil {
				fail("create_commitment", err)
				return
			}
			mu.Lock()
			result.CommitmentID = &created.ID
			mu.Unlock()
		}()
	}

	if input.Kind == domain.CaptureKindReflection && input.Reflection.wantsReflection() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := s.reflections.Create(ctx, userID, &domain.Reflection{
				ProjectID:   &entry.ProjectID,
				EntryID:     &entry.ID,
				Period:      input.Reflection.Period,
				PeriodStart: input.Reflection.PeriodStart,
				PeriodEnd:   input.Reflection.PeriodEnd,
				Answers:     input.Reflection.Answers,
			})
			if err != nil {
				fail("create_reflection", err)
				return
			}
			mu.Lock()
			result.ReflectionID = &created.ID
			mu.Unlock()
		}()
	}

	wg.Wait()

	if len(stepFails) > 0 {
		for _, f := range stepFails {
			s.log.ErrorContext(ctx, "capture step failed",
				slog.String("entry_id", entry.ID.String()),
				slog.String("step", f.Step),
				slog.Any("error", f.Err),
			)
		}
		return result, &domain.PartialCaptureError{EntryID: entry.ID, Steps: stepFails}
	}

	s.log.InfoContext(ctx, "capture completed",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.String("kind", input.Kind.String()),
	)

	return result, nil
}

func (s *Service) createCommitment(ctx context.Context, userID uuid.UUID, entry *domain.Entry, fields *CommitmentFields) (*domain.Commitment, error) {
	importance := fields.Importance
	if importance == 0 {
		importance = domain.DefaultImportance
	}
	urgency := fields.Urgency
	if urgency == 0 {
		urgency = domain.DefaultUrgency
	}

	return s.commitments.Create(ctx, userID, &domain.Commitment{
		ProjectID:    entry.ProjectID,
		EntryID:      &entry.ID,
		Title:        entry.Title,
		Direction:    fields.Direction,
		Status:       domain.CommitmentStatusOpen,
		Counterparty: fields.Counterparty,
		DueDate:      fields.DueDate,
		Importance:   importance,
		Urgency:      urgency,
		Notes:        fields.Notes,
		AIGenerated:  false,
	})
}
