package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hi5jack/compass-backend/internal/domain"
)

// Wire structs mirror the JSON schemas the prompts demand. They are decoded
// strictly and validated before anything crosses into the domain; arbitrary
// provider JSON never leaks to callers.

type summaryResponse struct {
	Summary          string                   `json:"summary"`
	KeyDecisions     []string                 `json:"key_decisions"`
	OpenQuestions    []string                 `json:"open_questions"`
	SuggestedActions []domain.SuggestedAction `json:"suggested_actions"`
}

type briefingResponse struct {
	Briefing      string   `json:"briefing"`
	TalkingPoints []string `json:"talking_points"`
}

type promptsResponse struct {
	Questions   []string `json:"questions"`
	Suggestions []string `json:"suggestions"`
}

// extractJSON finds the first complete JSON object in a string. Models wrap
// output in markdown fences or prose often enough that this is cheaper than
// fighting the prompt.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

func parseSummary(raw string) (*domain.EntrySummary, error) {
	jsonStr, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var resp summaryResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		return nil, fmt.Errorf("decode summary response: %w", err)
	}

	if strings.TrimSpace(resp.Summary) == "" {
		return nil, fmt.Errorf("summary is empty")
	}
	for _, a := range resp.SuggestedActions {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	return &domain.EntrySummary{
		Summary:          resp.Summary,
		KeyDecisions:     resp.KeyDecisions,
		OpenQuestions:    resp.OpenQuestions,
		SuggestedActions: resp.SuggestedActions,
	}, nil
}

func parseBriefing(raw string) (*domain.PrepBriefing, error) {
	jsonStr, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var resp briefingResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		return nil, fmt.Errorf("decode briefing response: %w", err)
	}

	if strings.TrimSpace(resp.Briefing) == "" {
		return nil, fmt.Errorf("briefing is empty")
	}

	return &domain.PrepBriefing{
		Briefing:      resp.Briefing,
		TalkingPoints: resp.TalkingPoints,
	}, nil
}

func parsePrompts(raw string) (*domain.ReflectionPrompts, error) {
	jsonStr, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var resp promptsResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		return nil, fmt.Errorf("decode prompts response: %w", err)
	}

	if len(resp.Questions) == 0 {
		return nil, fmt.Errorf("questions list is empty")
	}
	for i, q := range resp.Questions {
		if strings.TrimSpace(q) == "" {
			return nil, fmt.Errorf("question %d is empty", i)
		}
	}

	return &domain.ReflectionPrompts{
		Questions:   resp.Questions,
		Suggestions: resp.Suggestions,
	}, nil
}
