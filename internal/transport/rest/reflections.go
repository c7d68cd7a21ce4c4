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
	"github.com/hi5jack/compass-backend/internal/service/reflection"
)

// reflectionService defines the minimal interface needed by ReflectionHandler.
type reflectionService interface {
	GeneratePrompts(ctx context.Context, input reflection.GeneratePromptsInput) (*reflection.PromptsResult, error)
	Save(ctx context.Context, input reflection.SaveInput) (*domain.Reflection, error)
	Get(ctx context.Context, reflectionID uuid.UUID) (*domain.Reflection, error)
	List(ctx context.Context, filter domain.ReflectionFilter) ([]*domain.Reflection, error)
}

// ReflectionHandler serves reflection REST endpoints.
type ReflectionHandler struct {
	svc reflectionService
	log *slog.Logger
}

// NewReflectionHandler creates a ReflectionHandler.
func NewReflectionHandler(svc reflectionService, logger *slog.Logger) *ReflectionHandler {
	return &ReflectionHandler{svc: svc, log: logger.With("handler", "reflections")}
}

type generatePromptsRequest struct {
	PeriodType  string    `json:"periodType"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
}

type promptsResponse struct {
	Stats       map[string]int `json:"stats"`
	Questions   []string       `json:"questions"`
	Suggestions []string       `json:"suggestions"`
}

// GeneratePrompts handles POST /api/v1/reflections/prompts.
func (h *ReflectionHandler) GeneratePrompts(w http.ResponseWriter, r *http.Request) {
	var req generatePromptsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.GeneratePrompts(r.Context(), reflection.GeneratePromptsInput{
		Period:      domain.ReflectionPeriod(req.PeriodType),
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, promptsResponse{
		Stats:       result.Stats,
		Questions:   result.Questions,
		Suggestions: result.Suggestions,
	})
}

type saveReflectionRequest struct {
	ProjectID   *string        `json:"projectId,omitempty"`
	EntryID     *string        `json:"entryId,omitempty"`
	PeriodType  *string        `json:"periodType,omitempty"`
	PeriodStart *time.Time     `json:"periodStart,omitempty"`
	PeriodEnd   *time.Time     `json:"periodEnd,omitempty"`
	Stats       map[string]int `json:"stats,omitempty"`
	Answers     []qaResponse   `json:"answers,omitempty"`
	AIQuestions []string       `json:"aiQuestions,omitempty"`
}

// Save handles POST /api/v1/reflections.
func (h *ReflectionHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveReflectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := reflection.SaveInput{
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		Stats:       req.Stats,
		AIQuestions: req.AIQuestions,
	}
	if req.ProjectID != nil {
		id, err := uuid.Parse(*req.ProjectID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project id")
			return
		}
		input.ProjectID = &id
	}
	if req.EntryID != nil {
		id, err := uuid.Parse(*req.EntryID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid entry id")
			return
		}
		input.EntryID = &id
	}
	if req.PeriodType != nil {
		period := domain.ReflectionPeriod(*req.PeriodType)
		input.Period = &period
	}
	for _, qa := range req.Answers {
		input.Answers = append(input.Answers, domain.QA{Question: qa.Question, Answer: qa.Answer})
	}

	saved, err := h.svc.Save(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReflectionResponse(saved))
}

// Get handles GET /api/v1/reflections/{id}.
func (h *ReflectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	reflectionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reflection id")
		return
	}

	refl, err := h.svc.Get(r.Context(), reflectionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReflectionResponse(refl))
}

// List handles GET /api/v1/reflections with optional query filters:
// projectId, periodType, limit.
func (h *ReflectionHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.ReflectionFilter
	q := r.URL.Query()

	if v := q.Get("projectId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, errInvalidQueryParam("projectId").Error())
			return
		}
		filter.ProjectID = &id
	}
	if v := q.Get("periodType"); v != "" {
		period := domain.ReflectionPeriod(v)
		filter.Period = &period
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, errInvalidQueryParam("limit").Error())
			return
		}
		filter.Limit = limit
	}

	reflections, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]reflectionResponse{
		"reflections": toReflectionResponses(reflections),
	})
}
