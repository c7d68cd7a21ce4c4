package rest

import (
	"time"

	"github.com/hi5jack/compass-backend/internal/domain"
)

type projectResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	Priority     int        `json:"priority"`
	OwnerNotes   *string    `json:"ownerNotes,omitempty"`
	LastActiveAt *time.Time `json:"lastActiveAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		Type:         p.Type.String(),
		Status:       p.Status.String(),
		Priority:     p.Priority,
		OwnerNotes:   p.OwnerNotes,
		LastActiveAt: p.LastActiveAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProjectResponses(projects []*domain.Project) []projectResponse {
	out := make([]projectResponse, len(projects))
	for i, p := range projects {
		out[i] = toProjectResponse(p)
	}
	return out
}

type commitmentResponse struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"projectId"`
	EntryID      *string    `json:"entryId,omitempty"`
	Title        string     `json:"title"`
	Direction    string     `json:"direction"`
	Status       string     `json:"status"`
	Counterparty *string    `json:"counterparty,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	Importance   int        `json:"importance"`
	Urgency      int        `json:"urgency"`
	Notes        *string    `json:"notes,omitempty"`
	AIGenerated  bool       `json:"aiGenerated"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func toCommitmentResponse(c *domain.Commitment) commitmentResponse {
	resp := commitmentResponse{
		ID:           c.ID.String(),
		ProjectID:    c.ProjectID.String(),
		Title:        c.Title,
		Direction:    c.Direction.String(),
		Status:       c.Status.String(),
		Counterparty: c.Counterparty,
		DueDate:      c.DueDate,
		Importance:   c.Importance,
		Urgency:      c.Urgency,
		Notes:        c.Notes,
		AIGenerated:  c.AIGenerated,
		CompletedAt:  c.CompletedAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if c.EntryID != nil {
		id := c.EntryID.String()
		resp.EntryID = &id
	}
	return resp
}

func toCommitmentResponses(commitments []*domain.Commitment) []commitmentResponse {
	out := make([]commitmentResponse, len(commitments))
	for i, c := range commitments {
		out[i] = toCommitmentResponse(c)
	}
	return out
}

type qaResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type reflectionResponse struct {
	ID          string         `json:"id"`
	ProjectID   *string        `json:"projectId,omitempty"`
	EntryID     *string        `json:"entryId,omitempty"`
	PeriodType  *string        `json:"periodType,omitempty"`
	PeriodStart *time.Time     `json:"periodStart,omitempty"`
	PeriodEnd   *time.Time     `json:"periodEnd,omitempty"`
	Stats       map[string]int `json:"stats,omitempty"`
	Answers     []qaResponse   `json:"answers"`
	AIQuestions []string       `json:"aiQuestions"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func toReflectionResponse(r *domain.Reflection) reflectionResponse {
	resp := reflectionResponse{
		ID:          r.ID.String(),
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		Stats:       r.Stats,
		Answers:     make([]qaResponse, len(r.Answers)),
		AIQuestions: r.AIQuestions,
		CreatedAt:   r.CreatedAt,
	}
	if r.ProjectID != nil {
		id := r.ProjectID.String()
		resp.ProjectID = &id
	}
	if r.EntryID != nil {
		id := r.EntryID.String()
		resp.EntryID = &id
	}
	if r.Period != nil {
		period := r.Period.String()
		resp.PeriodType = &period
	}
	for i, qa := range r.Answers {
		resp.Answers[i] = qaResponse{Question: qa.Question, Answer: qa.Answer}
	}
	return resp
}

func toReflectionResponses(reflections []*domain.Reflection) []reflectionResponse {
	out := make([]reflectionResponse, len(reflections))
	for i, r := range reflections {
		out[i] = toReflectionResponse(r)
	}
	return out
}
