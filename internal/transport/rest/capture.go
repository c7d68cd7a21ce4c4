package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/internal/service/capture"
)

// captureService defines the minimal interface needed by CaptureHandler.
type captureService interface {
	Capture(ctx context.Context, input capture.Input) (*capture.Result, error)
}

// CaptureHandler serves the unified capture endpoint.
type CaptureHandler struct {
	svc captureService
	log *slog.Logger
}

// NewCaptureHandler creates a CaptureHandler.
func NewCaptureHandler(svc captureService, logger *slog.Logger) *CaptureHandler {
	return &CaptureHandler{svc: svc, log: logger.With("handler", "capture")}
}

type captureCommitmentRequest struct {
	Direction    string     `json:"direction"`
	Counterparty *string    `json:"counterparty,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	Importance   int        `json:"importance,omitempty"`
	Urgency      int        `json:"urgency,omitempty"`
}

type captureReflectionRequest struct {
	PeriodType  *string      `json:"periodType,omitempty"`
	PeriodStart *time.Time   `json:"periodStart,omitempty"`
	PeriodEnd   *time.Time   `json:"periodEnd,omitempty"`
	Answers     []qaResponse `json:"answers,omitempty"`
}

type captureRequest struct {
	ProjectID  string     `json:"projectId"`
	Kind       string     `json:"kind"`
	Title      string     `json:"title"`
	OccurredAt *time.Time `json:"occurredAt,omitempty"`
	RawContent *string    `json:"rawContent,omitempty"`

	Commitment *captureCommitmentRequest `json:"commitment,omitempty"`
	Reflection *captureReflectionRequest `json:"reflection,omitempty"`
}

type captureResponse struct {
	EntryID      string  `json:"entryId"`
	CommitmentID *string `json:"commitmentId,omitempty"`
	ReflectionID *string `json:"reflectionId,omitempty"`
}

// Capture handles POST /api/v1/capture.
func (h *CaptureHandler) Capture(w http.ResponseWriter, r *http.Request) {
	var req captureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// An unparseable project id falls through as uuid.Nil and fails input
	// validation with a field error.
	projectID, _ := uuid.Parse(req.ProjectID)

	input := capture.Input{
		ProjectID:  projectID,
		Kind:       domain.CaptureKind(req.Kind),
		Title:      req.Title,
		OccurredAt: req.OccurredAt,
		RawContent: req.RawContent,
	}
	if req.Commitment != nil {
		input.Commitment = &capture.CommitmentFields{
			Direction:    domain.CommitmentDirection(req.Commitment.Direction),
			Counterparty: req.Commitment.Counterparty,
			DueDate:      req.Commitment.DueDate,
			Notes:        req.Commitment.Notes,
			Importance:   req.Commitment.Importance,
			Urgency:      req.Commitment.Urgency,
		}
	}
	if req.Reflection != nil {
		fields := &capture.ReflectionFields{
			PeriodStart: req.Reflection.PeriodStart,
			PeriodEnd:   req.Reflection.PeriodEnd,
		}
		if req.Reflection.PeriodType != nil {
			period := domain.ReflectionPeriod(*req.Reflection.PeriodType)
			fields.Period = &period
		}
		for _, qa := range req.Reflection.Answers {
			fields.Answers = append(fields.Answers, domain.QA{Question: qa.Question, Answer: qa.Answer})
		}
		input.Reflection = fields
	}

	result, err := h.svc.Capture(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCaptureResponse(result))
}

func toCaptureResponse(result *capture.Result) captureResponse {
	resp := captureResponse{EntryID: result.EntryID.String()}
	if result.CommitmentID != nil {
		id := result.CommitmentID.String()
		resp.CommitmentID = &id
	}
	if result.ReflectionID != nil {
		id := result.ReflectionID.String()
		resp.ReflectionID = &id
	}
	return resp
}
