package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/internal/service/project"
)

// projectService defines the minimal interface needed by ProjectHandler.
type projectService interface {
	Create(ctx context.Context, input project.CreateInput) (*domain.Project, error)
	Get(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, filter domain.ProjectFilter) ([]*domain.Project, error)
	Update(ctx context.Context, projectID uuid.UUID, input project.UpdateInput) (*domain.Project, error)
}

// ProjectHandler serves project REST endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "projects")}
}

type createProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type"`
	Priority    int     `json:"priority,omitempty"`
	OwnerNotes  *string `json:"ownerNotes,omitempty"`
}

// Create handles POST /api/v1/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), project.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        domain.ProjectType(req.Type),
		Priority:    req.Priority,
		OwnerNotes:  req.OwnerNotes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(created))
}

// Get handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	p, err := h.svc.Get(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// List handles GET /api/v1/projects with optional query filters:
// status, type, minPriority, limit.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := projectFilterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	projects, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]projectResponse{
		"projects": toProjectResponses(projects),
	})
}

type updateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	OwnerNotes  *string `json:"ownerNotes,omitempty"`
}

// Update handles PATCH /api/v1/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := project.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Priority:    req.Priority,
		OwnerNotes:  req.OwnerNotes,
	}
	if req.Type != nil {
		typ := domain.ProjectType(*req.Type)
		input.Type = &typ
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		input.Status = &status
	}

	updated, err := h.svc.Update(r.Context(), projectID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(updated))
}

func projectFilterFromQuery(r *http.Request) (domain.ProjectFilter, error) {
	var filter domain.ProjectFilter
	q := r.URL.Query()

	if v := q.Get("status"); v != "" {
		status := domain.ProjectStatus(v)
		filter.Status = &status
	}
	if v := q.Get("type"); v != "" {
		typ := domain.ProjectType(v)
		filter.Type = &typ
	}
	if v := q.Get("minPriority"); v != "" {
		minPriority, err := strconv.Atoi(v)
		if err != nil {
			return filter, errInvalidQueryParam("minPriority")
		}
		filter.MinPriority = &minPriority
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
