package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hi5jack/compass-backend/internal/domain"
)

func errInvalidQueryParam(name string) error {
	return fmt.Errorf("invalid query parameter %q", name)
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

type partialCaptureResponse struct {
	Error       string   `json:"error"`
	EntryID     string   `json:"entryId"`
	FailedSteps []string `json:"failedSteps"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps domain errors to HTTP responses. A partial capture is the
// one non-error-shaped case: the entry persisted, so the client gets 207 with
// the entry id and the steps to retry.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	var pErr *domain.PartialCaptureError

	switch {
	case errors.As(err, &vErr):
		fields := make([]fieldErrorResponse, len(vErr.Errors))
		for i, fe := range vErr.Errors {
			fields[i] = fieldErrorResponse{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
	case errors.As(err, &pErr):
		steps := make([]string, len(pErr.Steps))
		for i, s := range pErr.Steps {
			steps[i] = s.Step
		}
		writeJSON(w, http.StatusMultiStatus, partialCaptureResponse{
			Error:       "entry saved, but a follow-up step failed",
			EntryID:     pErr.EntryID.String(),
			FailedSteps: steps,
		})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrAIUnavailable):
		writeError(w, http.StatusServiceUnavailable, "ai assistant is unavailable, your data is saved; try again later")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
