package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hi5jack/compass-backend/internal/domain"
)

// dashboardService defines the minimal interface needed by DashboardHandler.
type dashboardService interface {
	GetDashboard(ctx context.Context) (*domain.Dashboard, error)
}

// DashboardHandler serves the aggregated dashboard endpoint.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type pendingCountsResponse struct {
	DecisionsNeedingReview int `json:"decisionsNeedingReview"`
	PendingReflections     int `json:"pendingReflections"`
}

type dashboardResponse struct {
	WeeklyFocus  []commitmentResponse  `json:"weeklyFocus"`
	IdleProjects []projectResponse     `json:"idleProjects"`
	Pending      pendingCountsResponse `json:"pending"`
}

// Get handles GET /api/v1/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		WeeklyFocus:  toCommitmentResponses(dashboard.WeeklyFocus),
		IdleProjects: toProjectResponses(dashboard.IdleProjects),
		Pending: pendingCountsResponse{
			DecisionsNeedingReview: dashboard.Pending.DecisionsNeedingReview,
			PendingReflections:     dashboard.Pending.PendingReflections,
		},
	})
}
