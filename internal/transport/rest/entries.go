package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/internal/service/insight"
)

// insightService defines the minimal interface needed by EntryHandler.
type insightService interface {
	Summarize(ctx context.Context, entryID uuid.UUID) (*insight.SummarizeResult, error)
	CreateCommitmentsFromSuggestions(ctx context.Context, input insight.AcceptSuggestionsInput) ([]*domain.Commitment, error)
}

// EntryHandler serves entry summarization endpoints.
type EntryHandler struct {
	svc insightService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc insightService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entries")}
}

type summarizeResponse struct {
	Summary          string                   `json:"summary"`
	KeyDecisions     []string                 `json:"keyDecisions"`
	OpenQuestions    []string                 `json:"openQuestions"`
	SuggestedActions []domain.SuggestedAction `json:"suggestedActions"`
}

// Summarize handles POST /api/v1/entries/{id}/summarize.
func (h *EntryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	result, err := h.svc.Summarize(r.Context(), entryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summarizeResponse{
		Summary:          result.Summary,
		KeyDecisions:     result.KeyDecisions,
		OpenQuestions:    result.OpenQuestions,
		SuggestedActions: result.SuggestedActions,
	})
}

type acceptSuggestionsRequest struct {
	ProjectID string                   `json:"projectId"`
	Accepted  []domain.SuggestedAction `json:"accepted"`
}

type acceptSuggestionsResponse struct {
	Commitments []commitmentResponse `json:"commitments"`
}

// AcceptSuggestions handles POST /api/v1/entries/{id}/commitments.
func (h *EntryHandler) AcceptSuggestions(w http.ResponseWriter, r *http.Request) {
	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	var req acceptSuggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	projectID, _ := uuid.Parse(req.ProjectID)

	commitments, err := h.svc.CreateCommitmentsFromSuggestions(r.Context(), insight.AcceptSuggestionsInput{
		ProjectID: projectID,
		EntryID:   entryID,
		Accepted:  req.Accepted,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, acceptSuggestionsResponse{
		Commitments: toCommitmentResponses(commitments),
	})
}
