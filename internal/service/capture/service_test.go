package capture

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/pkg/ctxutil"
)

func newTestService(entries *entryRepoMock, commitments *commitmentRepoMock, reflections *reflectionRepoMock, projects *projectRepoMock) *Service {
	return &Service{
		entries:     entries,
		commitments: commitments,
		reflections: reflections,
		projects:    projects,
		log:         slog.New(slog.DiscardHandler),
	}
}

func okEntryMock(entryID uuid.UUID) *entryRepoMock {
	return &entryRepoMock{
		CreateFunc: func(ctx context.Context, userID uuid.UUID, e *domain.Entry) (*domain.Entry, error) {
			created := *e
			created.ID = entryID
			created.UserID = userID
			return &created, nil
		},
	}
}

func okProjectMock() *projectRepoMock {
	return &projectRepoMock{
		TouchLastActiveFunc: func(ctx context.Context, userID, projectID uuid.UUID, activeAt time.Time) error {
			return nil
		},
	}
}

func TestCapture_SimpleKind(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	entryID := uuid.New()
	projectID := uuid.New()

	entries := okEntryMock(entryID)
	projects := okProjectMock()
	svc := newTestService(entries, &commitmentRepoMock{}, &reflectionRepoMock{}, projects)

	ctx := ctxutil.WithUserID(context.Background(), userID)
	result, err := svc.Capture(ctx, Input{
		ProjectID: projectID,
		Kind:      domain.CaptureKindMeeting,
		Title:     "1:1 with Dana",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.EntryID != entryID {
		t.Errorf("EntryID = %s, want %s", result.EntryID, entryID)
	}
	if result.CommitmentID != nil || result.ReflectionID != nil {
		t.Errorf("simple kind created sub-records: %+v", result)
	}
	if got := entries.CreateCalls(); len(got) != 1 || got[0].Kind != domain.EntryKindMeeting {
		t.Errorf("entry create calls = %+v", got)
	}
	if len(projects.TouchLastActiveCalls()) != 1 {
		t.Error("project was not touched")
	}
}

func TestCapture_CommitmentKind(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	entryID := uuid.New()
	commitmentID := uuid.New()
	projectID := uuid.New()

	commitments := &commitmentRepoMock{
		CreateFunc: func(ctx context.Context, uid uuid.UUID, c *domain.Commitment) (*domain.Commitment, error) {
			created := *c
			created.ID = commitmentID
			return &created, nil
		},
	}
	svc := newTestService(okEntryMock(entryID), commitments, &reflectionRepoMock{}, okProjectMock())

	ctx := ctxutil.WithUserID(context.Background(), userID)
	result, err := svc.Capture(ctx, Input{
		ProjectID:  projectID,
		Kind:       domain.CaptureKindCommitment,
		Title:      "Send proposal",
		Commitment: &CommitmentFields{Direction: domain.DirectionIOwe, Importance: 4, Urgency: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CommitmentID == nil || *result.CommitmentID != commitmentID {
		t.Fatalf("CommitmentID = %v, want %s", result.CommitmentID, commitmentID)
	}

	calls := commitments.CreateCalls()
	if len(calls) != 1 {
		t.Fatalf("commitment create calls = %d, want 1", len(calls))
	}
	c := calls[0]
	if c.Title != "Send proposal" || c.Status != domain.CommitmentStatusOpen || c.AIGenerated {
		t.Errorf("commitment = %+v", c)
	}
	if c.EntryID == nil || *c.EntryID != entryID {
		t.Errorf("commitment EntryID = %v, want %s", c.EntryID, entryID)
	}
	if c.Importance != 4 || c.Urgency != 2 {
		t.Errorf("importance/urgency = %d/%d, want 4/2", c.Importance, c.Urgency)
	}
}

func TestCapture_CommitmentDefaults(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	commitments := &commitmentRepoMock{
		CreateFunc: func(ctx context.Context, uid uuid.UUID, c *domain.Commitment) (*domain.Commitment, error) {
			return c, nil
		},
	}
	svc := newTestService(okEntryMock(uuid.New()), commitments, &reflectionRepoMock{}, okProjectMock())

	ctx := ctxutil.WithUserID(context.Background(), userID)
	_, err := svc.Capture(ctx, Input{
		ProjectID:  uuid.New(),
		Kind:       domain.CaptureKindCommitment,
		Title:      "Follow up",
		Commitment: &CommitmentFields{Direction: domain.DirectionWaitingFor},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := commitments.CreateCalls()[0]
	if c.Importance != domain.DefaultImportance || c.Urgency != domain.DefaultUrgency {
		t.Errorf("defaults = %d/%d, want 3/3", c.Importance, c.Urgency)
	}
}

func TestCapture_ReflectionKind(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	reflectionID := uuid.New()
	period := domain.ReflectionPeriodWeek
	start := time.Now().AddDate(0, 0, -7)
	end := time.Now()

	reflections := &reflectionRepoMock{
		CreateFunc: func(ctx context.Context, uid uuid.UUID, r *domain.Reflection) (*domain.Reflection, error) {
			created := *r
			created.ID = reflectionID
			return &created, nil
		},
	}
	svc := newTestService(okEntryMock(uuid.New()), &commitmentRepoMock{}, reflections, okProjectMock())

	ctx := ctxutil.WithUserID(context.Background(), userID)
	result, err := svc.Capture(ctx, Input{
		ProjectID: uuid.New(),
		Kind:      domain.CaptureKindReflection,
		Title:     "Weekly review",
		Reflection: &ReflectionFields{
			Period:      &period,
			PeriodStart: &start,
			PeriodEnd:   &end,
			Answers:     []domain.QA{{Question: "What went well?", Answer: "Shipping."}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ReflectionID == nil || *result.ReflectionID != reflectionID {
		t.Fatalf("ReflectionID = %v, want %s", result.ReflectionID, reflectionID)
	}
}

func TestCapture_ReflectionWithoutPayloadSkipsSubRecord(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	reflections := &reflectionRepoMock{} // panics if called
	svc := newTestService(okEntryMock(uuid.New()), &commitmentRepoMock{}, reflections, okProjectMock())

	ctx := ctxutil.WithUserID(context.Background(), userID)
	result, err := svc.Capture(ctx, Input{
		ProjectID: uuid.New(),
		Kind:      domain.CaptureKindReflection,
		Title:     "Just a thought",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ReflectionID != nil {
		t.Errorf("ReflectionID = %v, want nil", result.ReflectionID)
	}
}

func TestCapture_EntryCreateFails(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	entries := &entryRepoMock{
		CreateFunc: func(ctx context.Context, uid uuid.UUID, e *domain.Entry) (*domain.Entry, error) {
			return nil, domain.ErrNotFound
		},
	}
	projects := okProjectMock()
	svc := newTestService(entries, &commitmentRepoMock{}, &reflectionRepoMock{}, projects)

	ctx := ctxutil.WithUserID(context.Background(), userID)
	result, err := svc.Capture(ctx, Input{
		ProjectID: uuid.New(),
		Kind:      domain.CaptureKindNote,
		Title:     "orphan",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
	if len(projects.TouchLastActiveCalls()) != 0 {
		t.Error("project touched despite entry failure")
	}
}

func TestCapture_DependentStepFails(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	entryID := uuid.New()

	commitments := &commitmentRepoMock{
		CreateFunc: func(ctx context.Context, uid uuid.UUID, c *domain.Commitment) (*domain.Commitment, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := newTestService(okEntryMock(entryID), commitments, &reflectionRepoMock{}, okProjectMock())

	ctx := ctxutil.WithUserID(context.Background(), userID)
	result, err := svc.Capture(ctx, Input{
		ProjectID:  uuid.New(),
		Kind:       domain.CaptureKindCommitment,
		Title:      "Send proposal",
		Commitment: &CommitmentFields{Direction: domain.DirectionIOwe},
	})

	if !errors.Is(err, domain.ErrPartialCapture) {
		t.Fatalf("error = %v, want ErrPartialCapture", err)
	}

	var partial *domain.PartialCaptureError
	if !errors.As(err, &partial) {
		t.Fatalf("error = %v, want *domain.PartialCaptureError", err)
	}
	if partial.EntryID != entryID {
		t.Errorf("partial EntryID = %s, want %s", partial.EntryID, entryID)
	}
	if len(partial.Steps) != 1 || partial.Steps[0].Step != "create_commitment" {
		t.Errorf("partial Steps = %+v", partial.Steps)
	}

	// The entry survived; the caller still gets its id.
	if result == nil || result.EntryID != entryID {
		t.Errorf("result = %+v, want entry id %s", result, entryID)
	}
	if result.CommitmentID != nil {
		t.Errorf("CommitmentID = %v, want nil", result.CommitmentID)
	}
}

func TestCapture_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService(&entryRepoMock{}, &commitmentRepoMock{}, &reflectionRepoMock{}, &projectRepoMock{})
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	tests := []struct {
		name  string
		input Input
	}{
		{
			name:  "missing project",
			input: Input{Kind: domain.CaptureKindNote, Title: "x"},
		},
		{
			name:  "empty title",
			input: Input{ProjectID: uuid.New(), Kind: domain.CaptureKindNote},
		},
		{
			name:  "unknown kind",
			input: Input{ProjectID: uuid.New(), Kind: "whatever", Title: "x"},
		},
		{
			name:  "commitment without fields",
			input: Input{ProjectID: uuid.New(), Kind: domain.CaptureKindCommitment, Title: "x"},
		},
		{
			name: "commitment bad direction",
			input: Input{
				ProjectID:  uuid.New(),
				Kind:       domain.CaptureKindCommitment,
				Title:      "x",
				Commitment: &CommitmentFields{Direction: "sideways"},
			},
		},
		{
			name: "commitment importance out of range",
			input: Input{
				ProjectID:  uuid.New(),
				Kind:       domain.CaptureKindCommitment,
				Title:      "x",
				Commitment: &CommitmentFields{Direction: domain.DirectionIOwe, Importance: 7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Capture(ctx, tt.input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCapture_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := newTestService(&entryRepoMock{}, &commitmentRepoMock{}, &reflectionRepoMock{}, &projectRepoMock{})

	_, err := svc.Capture(context.Background(), Input{
		ProjectID: uuid.New(),
		Kind:      domain.CaptureKindNote,
		Title:     "x",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}
