// Package entry implements the Entry repository using PostgreSQL.
package entry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/adapter/postgres"
	"github.com/hi5jack/compass-backend/internal/domain"
)

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new entry repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const columns = "id, user_id, project_id, kind, title, occurred_at, raw_content, ai_summary, ai_suggested_actions, is_decision, created_at, updated_at"

// row mirrors one entries row for scanning. ai_suggested_actions stays raw
// JSONB bytes until mapping.
type row struct {
	ID               uuid.UUID  `db:"id"`
	UserID           uuid.UUID  `db:"user_id"`
	ProjectID        uuid.UUID  `db:"project_id"`
	Kind             string     `db:"kind"`
	Title            string     `db:"title"`
	OccurredAt       time.Time  `db:"occurred_at"`
	RawContent       *string    `db:"raw_content"`
	AISummary        *string    `db:"ai_summary"`
	SuggestedActions []byte     `db:"ai_suggested_actions"`
	IsDecision       bool       `db:"is_decision"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

const createSQL = `
INSERT INTO entries (user_id, project_id, kind, title, occurred_at, raw_content, is_decision)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + columns

const getByIDSQL = `
SELECT ` + columns + `
FROM entries
WHERE user_id = $1 AND id = $2`

const updateAISummarySQL = `
UPDATE entries
SET ai_summary = $3, ai_suggested_actions = $4, updated_at = now()
WHERE user_id = $1 AND id = $2`

const countDecisionsNeedingReviewSQL = `
SELECT count(*)
FROM entries
WHERE user_id = $1 AND kind = 'decision' AND ai_summary IS NULL`

const countInRangeSQL = `
SELECT count(*)
FROM entries
WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3`

// Create inserts a new entry and returns the persisted domain.Entry.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, e *domain.Entry) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	err := pgxscan.Get(ctx, q, &rw, createSQL,
		userID, e.ProjectID, e.Kind.String(), e.Title, e.OccurredAt, e.RawContent, e.IsDecision)
	if err != nil {
		return nil, postgres.MapError(err, "entry", uuid.Nil)
	}

	return toDomain(rw)
}

// GetByID returns an entry by primary key scoped to the owning user.
// Returns domain.ErrNotFound if the entry does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, getByIDSQL, userID, entryID); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("entry %s: %w", entryID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "entry", entryID)
	}

	return toDomain(rw)
}

// List returns the user's entries matching the filter, ordered by
// occurred_at descending. Returns an empty slice (not nil) on no matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.EntryFilter) ([]*domain.Entry, error) {
	qb := squirrel.Select(columns).
		From("entries").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("occurred_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if f.ProjectID != nil {
		qb = qb.Where(squirrel.Eq{"project_id": *f.ProjectID})
	}
	if len(f.Kinds) > 0 {
		kinds := make([]string, len(f.Kinds))
		for i, k := range f.Kinds {
			kinds[i] = k.String()
		}
		qb = qb.Where(squirrel.Eq{"kind": kinds})
	}
	if f.From != nil {
		qb = qb.Where(squirrel.GtOrEq{"occurred_at": *f.From})
	}
	if f.To != nil {
		qb = qb.Where(squirrel.Lt{"occurred_at": *f.To})
	}
	if f.Limit > 0 {
		qb = qb.Limit(uint64(f.Limit))
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list entries: build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	entries := make([]*domain.Entry, len(rows))
	for i, rw := range rows {
		e, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}

	return entries, nil
}

// UpdateAISummary overwrites the entry's summary and suggested actions.
// Re-running summarization is idempotent-by-overwrite: prior values are
// replaced, never appended. Returns domain.ErrNotFound when nothing matched.
func (r *Repo) UpdateAISummary(ctx context.Context, userID, entryID uuid.UUID, summary string, actions []domain.SuggestedAction) error {
	if actions == nil {
		actions = []domain.SuggestedAction{}
	}
	payload, err := json.Marshal(actions)
	if err != nil {
		return fmt.Errorf("entry %s: marshal suggested actions: %w", entryID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, updateAISummarySQL, userID, entryID, summary, payload)
	if err != nil {
		return postgres.MapError(err, "entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", entryID, domain.ErrNotFound)
	}

	return nil
}

// CountDecisionsNeedingReview counts the user's decision entries that have no
// AI summary yet.
func (r *Repo) CountDecisionsNeedingReview(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, countDecisionsNeedingReviewSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count decisions needing review: %w", err)
	}

	return count, nil
}

// CountInRange counts the user's entries with occurred_at in [from, to).
func (r *Repo) CountInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, countInRangeSQL, userID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries in range: %w", err)
	}

	return count, nil
}

// toDomain converts a scanned row into a domain.Entry.
func toDomain(rw row) (*domain.Entry, error) {
	e := &domain.Entry{
		ID:         rw.ID,
		UserID:     rw.UserID,
		ProjectID:  rw.ProjectID,
		Kind:       domain.EntryKind(rw.Kind),
		Title:      rw.Title,
		OccurredAt: rw.OccurredAt,
		RawContent: rw.RawContent,
		AISummary:  rw.AISummary,
		IsDecision: rw.IsDecision,
		CreatedAt:  rw.CreatedAt,
		UpdatedAt:  rw.UpdatedAt,
	}

	if len(rw.SuggestedActions) > 0 {
		if err := json.Unmarshal(rw.SuggestedActions, &e.SuggestedActions); err != nil {
			return nil, fmt.Errorf("entry %s: decode suggested actions: %w", rw.ID, err)
		}
	}

	return e, nil
}
