package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/internal/service/commitment"
)

// commitmentService defines the minimal interface needed by CommitmentHandler.
type commitmentService interface {
	Create(ctx context.Context, input commitment.CreateInput) (*domain.Commitment, error)
	Get(ctx context.Context, commitmentID uuid.UUID) (*domain.Commitment, error)
	List(ctx context.Context, filter domain.CommitmentFilter) ([]*domain.Commitment, error)
	Update(ctx context.Context, commitmentID uuid.UUID, input commitment.UpdateInput) (*domain.Commitment, error)
}

// CommitmentHandler serves commitment REST endpoints.
type CommitmentHandler struct {
	svc commitmentService
	log *slog.Logger
}

// NewCommitmentHandler creates a CommitmentHandler.
func NewCommitmentHandler(svc commitmentService, logger *slog.Logger) *CommitmentHandler {
	return &CommitmentHandler{svc: svc, log: logger.With("handler", "commitments")}
}

type createCommitmentRequest struct {
	ProjectID    string     `json:"projectId"`
	Title        string     `json:"title"`
	Direction    string     `json:"direction"`
	Counterparty *string    `json:"counterparty,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	Importance   int        `json:"importance,omitempty"`
	Urgency      int        `json:"urgency,omitempty"`
}

// Create handles POST /api/v1/commitments.
func (h *CommitmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommitmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	projectID, _ := uuid.Parse(req.ProjectID)

	created, err := h.svc.Create(r.Context(), commitment.CreateInput{
		ProjectID:    projectID,
		Title:        req.Title,
		Direction:    domain.CommitmentDirection(req.Direction),
		Counterparty: req.Counterparty,
		DueDate:      req.DueDate,
		Notes:        req.Notes,
		Importance:   req.Importance,
		Urgency:      req.Urgency,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommitmentResponse(created))
}

// Get handles GET /api/v1/commitments/{id}.
func (h *CommitmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	commitmentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid commitment id")
		return
	}

	c, err := h.svc.Get(r.Context(), commitmentID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommitmentResponse(c))
}

// List handles GET /api/v1/commitments with optional query filters:
// projectId, status, direction, dueBefore (RFC 3339), limit.
func (h *CommitmentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := commitmentFilterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	commitments, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]commitmentResponse{
		"commitments": toCommitmentResponses(commitments),
	})
}

type updateCommitmentRequest struct {
	Title        *string    `json:"title,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Counterparty *string    `json:"counterparty,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	ClearDueDate bool       `json:"clearDueDate,omitempty"`
	Importance   *int       `json:"importance,omitempty"`
	Urgency      *int       `json:"urgency,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

// Update handles PATCH /api/v1/commitments/{id}.
func (h *CommitmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	commitmentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid commitment id")
		return
	}

	var req updateCommitmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := commitment.UpdateInput{
		Title:        req.Title,
		Counterparty: req.Counterparty,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
		Importance:   req.Importance,
		Urgency:      req.Urgency,
		Notes:        req.Notes,
	}
	if req.Status != nil {
		status := domain.CommitmentStatus(*req.Status)
		input.Status = &status
	}

	updated, err := h.svc.Update(r.Context(), commitmentID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommitmentResponse(updated))
}

func commitmentFilterFromQuery(r *http.Request) (domain.CommitmentFilter, error) {
	var filter domain.CommitmentFilter
	q := r.URL.Query()

	if v := q.Get("projectId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errInvalidQueryParam("projectId")
		}
		filter.ProjectID = &id
	}
	if v := q.Get("status"); v != "" {
		status := domain.CommitmentStatus(v)
		filter.Status = &status
	}
	if v := q.Get("direction"); v != "" {
		direction := domain.CommitmentDirection(v)
		filter.Direction = &direction
	}
	if v := q.Get("dueBefore"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errInvalidQueryParam("dueBefore")
		}
		filter.DueBefore = &t
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return filter, errInvalidQueryParam("limit")
		}
		filter.Limit = limit
	}

	return filter, nil
}
