package rest

import (
	"net/http"

	"github.com/hi5jack/compass-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health      *HealthHandler
	Capture     *CaptureHandler
	Entries     *EntryHandler
	Commitments *CommitmentHandler
	Projects    *ProjectHandler
	Dashboard   *DashboardHandler
	Prep        *PrepHandler
	Reflections *ReflectionHandler
}

// NewRouter builds the HTTP routing table. base wraps every route (request
// id, recovery, CORS, logging); authn additionally wraps /api/v1 so health
// probes stay unauthenticated.
func NewRouter(h Handlers, base, authn middleware.Middleware) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("POST /api/v1/capture", h.Capture.Capture)

	api.HandleFunc("POST /api/v1/entries/{id}/summarize", h.Entries.Summarize)
	api.HandleFunc("POST /api/v1/entries/{id}/commitments", h.Entries.AcceptSuggestions)

	api.HandleFunc("POST /api/v1/commitments", h.Commitments.Create)
	api.HandleFunc("GET /api/v1/commitments", h.Commitments.List)
	api.HandleFunc("GET /api/v1/commitments/{id}", h.Commitments.Get)
	api.HandleFunc("PATCH /api/v1/commitments/{id}", h.Commitments.Update)

	api.HandleFunc("POST /api/v1/projects", h.Projects.Create)
	api.HandleFunc("GET /api/v1/projects", h.Projects.List)
	api.HandleFunc("GET /api/v1/projects/{id}", h.Projects.Get)
	api.HandleFunc("PATCH /api/v1/projects/{id}", h.Projects.Update)
	api.HandleFunc("POST /api/v1/projects/{id}/briefing", h.Prep.Briefing)

	api.HandleFunc("GET /api/v1/dashboard", h.Dashboard.Get)

	api.HandleFunc("POST /api/v1/reflections/prompts", h.Reflections.GeneratePrompts)
	api.HandleFunc("POST /api/v1/reflections", h.Reflections.Save)
	api.HandleFunc("GET /api/v1/reflections", h.Reflections.List)
	api.HandleFunc("GET /api/v1/reflections/{id}", h.Reflections.Get)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("/api/v1/", authn(api))

	return base(mux)
}
