package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hi5jack/compass-backend/internal/config"
	"github.com/hi5jack/compass-backend/internal/domain"
)

// newStubClient points the gateway at a stub Messages endpoint.
func newStubClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.LLMConfig{
		APIKey:    "test-key",
		Model:     "claude-sonnet-4-5",
		MaxTokens: 1024,
		Timeout:   5 * time.Second,
	}

	return New(cfg, slog.New(slog.DiscardHandler), option.WithBaseURL(server.URL))
}

func messagesResponse(text string) string {
	return fmt.Sprintf(`{
		"id": "msg_test",
		"type": "message",
		"role": "assistant",
		"model": "claude-sonnet-4-5",
		"content": [{"type": "text", "text": %q}],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 10, "output_tokens": 20}
	}`, text)
}

func TestClient_SummarizeEntry(t *testing.T) {
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, messagesResponse(`{"summary": "Shipped the flag.", "suggested_actions": [{"title": "Write postmortem", "direction": "i_owe"}]}`))
	})

	got, err := client.SummarizeEntry(context.Background(), "we shipped the flag", "Project: rollout")
	if err != nil {
		t.Fatalf("SummarizeEntry() unexpected error: %v", err)
	}
	if got.Summary != "Shipped the flag." {
		t.Errorf("Summary = %q", got.Summary)
	}
	if len(got.SuggestedActions) != 1 || got.SuggestedActions[0].Title != "Write postmortem" {
		t.Errorf("SuggestedActions = %+v", got.SuggestedActions)
	}
}

func TestClient_SummarizeEntry_ProviderError(t *testing.T) {
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"type": "error", "error": {"type": "api_error", "message": "overloaded"}}`)
	})

	_, err := client.SummarizeEntry(context.Background(), "text", "")
	if !errors.Is(err, domain.ErrAIUnavailable) {
		t.Fatalf("error = %v, want ErrAIUnavailable", err)
	}

	var aiErr *domain.AIError
	if !errors.As(err, &aiErr) {
		t.Fatalf("error = %v, want *domain.AIError", err)
	}
	if aiErr.Malformed {
		t.Error("provider failure reported as malformed")
	}
}

func TestClient_SummarizeEntry_MalformedResponse(t *testing.T) {
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, messagesResponse("I'm sorry, I can't produce JSON today."))
	})

	_, err := client.SummarizeEntry(context.Background(), "text", "")
	if !errors.Is(err, domain.ErrAIUnavailable) {
		t.Fatalf("error = %v, want ErrAIUnavailable", err)
	}

	var aiErr *domain.AIError
	if !errors.As(err, &aiErr) {
		t.Fatalf("error = %v, want *domain.AIError", err)
	}
	if !aiErr.Malformed {
		t.Error("shape failure not reported as malformed")
	}
}

func TestClient_GenerateReflectionPrompts(t *testing.T) {
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, messagesResponse(`{"questions": ["What stalled?"], "suggestions": ["shorter standups"]}`))
	})

	got, err := client.GenerateReflectionPrompts(context.Background(), "week", map[string]int{"entries": 12})
	if err != nil {
		t.Fatalf("GenerateReflectionPrompts() unexpected error: %v", err)
	}
	if len(got.Questions) != 1 {
		t.Errorf("Questions = %+v", got.Questions)
	}
}
