package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/internal/service/capture"
)

type captureServiceMock struct {
	CaptureFunc func(ctx context.Context, input capture.Input) (*capture.Result, error)
}

func (m *captureServiceMock) Capture(ctx context.Context, input capture.Input) (*capture.Result, error) {
	return m.CaptureFunc(ctx, input)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCapture_Success(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()
	entryID := uuid.New()
	commitmentID := uuid.New()

	var gotInput capture.Input
	svc := &captureServiceMock{
		CaptureFunc: func(_ context.Context, input capture.Input) (*capture.Result, error) {
			gotInput = input
			return &capture.Result{EntryID: entryID, CommitmentID: &commitmentID}, nil
		},
	}
	h := NewCaptureHandler(svc, discardLogger())

	body := `{
		"projectId": "` + projectID.String() + `",
		"kind": "commitment",
		"title": "send the report",
		"commitment": {"direction": "i_owe", "importance": 4}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/capture", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Capture(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if gotInput.ProjectID != projectID {
		t.Errorf("projectID = %v, want %v", gotInput.ProjectID, projectID)
	}
	if gotInput.Kind != domain.CaptureKindCommitment {
		t.Errorf("kind = %q, want commitment", gotInput.Kind)
	}
	if gotInput.Commitment == nil || gotInput.Commitment.Direction != domain.DirectionIOwe {
		t.Errorf("commitment fields = %+v, want direction i_owe", gotInput.Commitment)
	}

	var resp captureResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.EntryID != entryID.String() {
		t.Errorf("entryId = %q, want %q", resp.EntryID, entryID)
	}
	if resp.CommitmentID == nil || *resp.CommitmentID != commitmentID.String() {
		t.Errorf("commitmentId = %v, want %q", resp.CommitmentID, commitmentID)
	}
}

func TestCapture_PartialFailure(t *testing.T) {
	t.Parallel()

	entryID := uuid.New()
	svc := &captureServiceMock{
		CaptureFunc: func(_ context.Context, _ capture.Input) (*capture.Result, error) {
			return &capture.Result{EntryID: entryID}, &domain.PartialCaptureError{
				EntryID: entryID,
				Steps:   []domain.CaptureStepError{{Step: "create_commitment"}},
			}
		},
	}
	h := NewCaptureHandler(svc, discardLogger())

	body := `{"projectId": "` + uuid.New().String() + `", "kind": "commitment", "title": "t", "commitment": {"direction": "i_owe"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/capture", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Capture(rec, req)

	if rec.Code != http.StatusMultiStatus {
		t.Fatalf("expected status 207, got %d", rec.Code)
	}

	var resp partialCaptureResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.EntryID != entryID.String() {
		t.Errorf("entryId = %q, want %q", resp.EntryID, entryID)
	}
	if len(resp.FailedSteps) != 1 || resp.FailedSteps[0] != "create_commitment" {
		t.Errorf("failedSteps = %v, want [create_commitment]", resp.FailedSteps)
	}
}

func TestCapture_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &captureServiceMock{
		CaptureFunc: func(_ context.Context, _ capture.Input) (*capture.Result, error) {
			return nil, domain.NewValidationError("title", "required")
		},
	}
	h := NewCaptureHandler(svc, discardLogger())

	body := `{"projectId": "` + uuid.New().String() + `", "kind": "note", "title": ""}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/capture", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Capture(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Fields) != 1 || resp.Fields[0].Field != "title" {
		t.Errorf("fields = %v, want title error", resp.Fields)
	}
}

func TestCapture_InvalidBody(t *testing.T) {
	t.Parallel()

	svc := &captureServiceMock{
		CaptureFunc: func(_ context.Context, _ capture.Input) (*capture.Result, error) {
			t.Error("service should not be called for invalid body")
			return nil, nil
		},
	}
	h := NewCaptureHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/capture", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Capture(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
