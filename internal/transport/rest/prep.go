package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/internal/service/prep"
)

// prepService defines the minimal interface needed by PrepHandler.
type prepService interface {
	GenerateBriefing(ctx context.Context, projectID uuid.UUID) (*prep.Briefing, error)
}

// PrepHandler serves the meeting-prep briefing endpoint.
type PrepHandler struct {
	svc prepService
	log *slog.Logger
}

// NewPrepHandler creates a PrepHandler.
func NewPrepHandler(svc prepService, logger *slog.Logger) *PrepHandler {
	return &PrepHandler{svc: svc, log: logger.With("handler", "prep")}
}

type briefingResponse struct {
	Project       projectResponse           `json:"project"`
	Entries       []domain.PrepContextEntry `json:"entries"`
	Commitments   []commitmentResponse      `json:"commitments"`
	Briefing      string                    `json:"briefing"`
	TalkingPoints []string                  `json:"talkingPoints"`
}

// Briefing handles POST /api/v1/projects/{id}/briefing.
func (h *PrepHandler) Briefing(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	result, err := h.svc.GenerateBriefing(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, briefingResponse{
		Project:       toProjectResponse(result.Project),
		Entries:       result.Entries,
		Commitments:   toCommitmentResponses(result.Commitments),
		Briefing:      result.Briefing.Briefing,
		TalkingPoints: result.Briefing.TalkingPoints,
	})
}
