// Package llm implements the AI gateway over the Anthropic Messages API.
//
// The gateway is stateless and fail-fast: one provider call per operation, no
// retries, no caching. Failures surface as *domain.AIError so callers can
// distinguish a provider outage from a response that failed shape validation.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hi5jack/compass-backend/internal/config"
	"github.com/hi5jack/compass-backend/internal/domain"
)

// Client is the AI gateway. Construct once and inject; all configuration is
// immutable after New.
type Client struct {
	api       anthropic.Client
	model     anthropic.Model
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// New creates the gateway from config. Extra request options (base URL,
// custom HTTP client) are appended after the defaults, so tests can point the
// client at a stub server.
func New(cfg config.LLMConfig, log *slog.Logger, opts ...option.RequestOption) *Client {
	baseOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}

	return &Client{
		api:       anthropic.NewClient(append(baseOpts, opts...)...),
		model:     anthropic.Model(cfg.Model),
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		log:       log.With("service", "llm"),
	}
}

// SummarizeEntry asks the model to summarize raw entry text and extract
// candidate commitments. projectContext is optional free text framing the
// entry; empty means no project context.
func (c *Client) SummarizeEntry(ctx context.Context, rawText, projectContext string) (*domain.EntrySummary, error) {
	const op = "summarize_entry"

	raw, err := c.complete(ctx, op, buildSummaryPrompt(rawText, projectContext))
	if err != nil {
		return nil, err
	}

	summary, err := parseSummary(raw)
	if err != nil {
		c.log.ErrorContext(ctx, "malformed summary response", "error", err)
		return nil, domain.NewAIMalformedError(op, err)
	}

	return summary, nil
}

// GeneratePrepBriefing asks the model for a briefing and talking points ahead
// of engaging with a project.
func (c *Client) GeneratePrepBriefing(ctx context.Context, projectName string, entries []domain.PrepContextEntry, commitments []*domain.Commitment) (*domain.PrepBriefing, error) {
	const op = "prep_briefing"

	raw, err := c.complete(ctx, op, buildBriefingPrompt(projectName, entries, commitments))
	if err != nil {
		return nil, err
	}

	briefing, err := parseBriefing(raw)
	if err != nil {
		c.log.ErrorContext(ctx, "malformed briefing response", "error", err)
		return nil, domain.NewAIMalformedError(op, err)
	}

	return briefing, nil
}

// GenerateReflectionPrompts asks the model for reflection questions over a
// period's activity snapshot.
func (c *Client) GenerateReflectionPrompts(ctx context.Context, timeframeLabel string, stats map[string]int) (*domain.ReflectionPrompts, error) {
	const op = "reflection_prompts"

	raw, err := c.complete(ctx, op, buildReflectionPrompt(timeframeLabel, stats))
	if err != nil {
		return nil, err
	}

	prompts, err := parsePrompts(raw)
	if err != nil {
		c.log.ErrorContext(ctx, "malformed prompts response", "error", err)
		return nil, domain.NewAIMalformedError(op, err)
	}

	return prompts, nil
}

// complete performs one bounded provider call and returns the raw response
// text. All provider-side failures, including timeout, come back as a
// provider AIError.
func (c *Client) complete(ctx context.Context, op, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	started := time.Now()
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		c.log.ErrorContext(ctx, "provider call failed", "op", op, "error", err)
		return "", domain.NewAIProviderError(op, err)
	}

	if len(msg.Content) == 0 {
		return "", domain.NewAIMalformedError(op, fmt.Errorf("empty response content"))
	}

	c.log.InfoContext(ctx, "provider call completed",
		"op", op,
		"duration", time.Since(started),
		"input_tokens", msg.Usage.InputTokens,
		"output_tokens", msg.Usage.OutputTokens,
	)

	return msg.Content[0].Text, nil
}
