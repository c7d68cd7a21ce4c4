package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hi5jack/compass-backend/internal/domain"
)

// buildSummaryPrompt creates the prompt for summarizing a single entry.
// projectContext is free text (project name and description) and may be empty.
func buildSummaryPrompt(rawText, projectContext string) string {
	contextBlock := "(no project context available)"
	if projectContext != "" {
		contextBlock = projectContext
	}

	return fmt.Sprintf(`You are an executive assistant for an engineering leader.

Given the raw notes below, produce a structured summary in JSON format.

Project context:
%s

Raw notes:
%s

Output ONLY a valid JSON object matching this exact schema:
{
  "summary": "<2-4 sentence summary of what happened>",
  "key_decisions": ["<decision made, if any>"],
  "open_questions": ["<unresolved question, if any>"],
  "suggested_actions": [
    {
      "title": "<short actionable commitment title>",
      "direction": "<i_owe|waiting_for>",
      "counterparty": "<person or team, or omit>",
      "due_date": "<YYYY-MM-DD, or omit if no deadline was mentioned>",
      "notes": "<context for the commitment, or omit>",
      "importance": <1-5, or omit>,
      "urgency": <1-5, or omit>
    }
  ]
}

Rules:
- Extract only commitments actually present or strongly implied in the notes
- direction is "i_owe" when the author promised something, "waiting_for" when someone else did
- Never invent due dates; include due_date only when a date was mentioned
- Empty arrays are fine; never pad with filler items
- Output ONLY the JSON, no markdown, no explanations`, contextBlock, rawText)
}

// buildBriefingPrompt creates the prompt for a prep briefing before engaging
// with a project.
func buildBriefingPrompt(projectName string, entries []domain.PrepContextEntry, commitments []*domain.Commitment) string {
	var recent strings.Builder
	if len(entries) == 0 {
		recent.WriteString("(no recent activity)\n")
	}
	for _, e := range entries {
		fmt.Fprintf(&recent, "- [%s] %s: %s\n", e.OccurredAt.Format("2006-01-02"), e.Kind, e.Content)
	}

	var open strings.Builder
	if len(commitments) == 0 {
		open.WriteString("(no open commitments)\n")
	}
	for _, c := range commitments {
		due := "no due date"
		if c.DueDate != nil {
			due = "due " + c.DueDate.Format("2006-01-02")
		}
		fmt.Fprintf(&open, "- [%s] %s (%s, importance %d, urgency %d)\n", c.Direction, c.Title, due, c.Importance, c.Urgency)
	}

	return fmt.Sprintf(`You are an executive assistant preparing a leader for their next touchpoint on the project %q.

Recent activity (newest first):
%s
Open commitments:
%s
Output ONLY a valid JSON object matching this exact schema:
{
  "briefing": "<3-5 sentence state-of-the-project briefing>",
  "talking_points": ["<concrete point to raise>", "..."]
}

Rules:
- Lead with whatever is most at risk or most overdue
- Talking points must be specific to the activity and commitments above
- 3-6 talking points
- Output ONLY the JSON, no markdown, no explanations`, projectName, recent.String(), open.String())
}

// buildReflectionPrompt creates the prompt for generating reflection
// questions for a period.
func buildReflectionPrompt(timeframeLabel string, stats map[string]int) string {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var snapshot strings.Builder
	if len(keys) == 0 {
		snapshot.WriteString("(no activity recorded)\n")
	}
	for _, k := range keys {
		fmt.Fprintf(&snapshot, "- %s: %d\n", k, stats[k])
	}

	return fmt.Sprintf(`You are a leadership coach. The user is reflecting on the past %s.

Activity snapshot:
%s
Output ONLY a valid JSON object matching this exact schema:
{
  "questions": ["<reflective question grounded in the snapshot>", "..."],
  "suggestions": ["<small concrete improvement to try next %s>", "..."]
}

Rules:
- 3-5 questions, open-ended, no yes/no questions
- 1-3 suggestions
- Output ONLY the JSON, no markdown, no explanations`, timeframeLabel, snapshot.String(), timeframeLabel)
}
