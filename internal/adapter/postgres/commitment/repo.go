// Package commitment implements the Commitment repository using PostgreSQL.
package commitment

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hi5jack/compass-backend/internal/adapter/postgres"
	"github.com/hi5jack/compass-backend/internal/domain"
)

// Repo provides commitment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new commitment repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const columns = "id, user_id, project_id, entry_id, title, direction, status, counterparty, due_date, importance, urgency, notes, ai_generated, completed_at, created_at, updated_at"

// listOrder is the single consistent ordering for commitment lists:
// soonest due first, commitments without a due date last.
const listOrder = "due_date ASC NULLS LAST, created_at DESC"

// row mirrors one commitments row for scanning.
type row struct {
	ID           uuid.UUID  `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	ProjectID    uuid.UUID  `db:"project_id"`
	EntryID      *uuid.UUID `db:"entry_id"`
	Title        string     `db:"title"`
	Direction    string     `db:"direction"`
	Status       string     `db:"status"`
	Counterparty *string    `db:"counterparty"`
	DueDate      *time.Time `db:"due_date"`
	Importance   int        `db:"importance"`
	Urgency      int        `db:"urgency"`
	Notes        *string    `db:"notes"`
	AIGenerated  bool       `db:"ai_generated"`
	CompletedAt  *time.Time `db:"completed_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

const createSQL = `
INSERT INTO commitments (user_id, project_id, entry_id, title, direction, status, counterparty, due_date, importance, urgency, notes, ai_generated)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + columns

const getByIDSQL = `
SELECT ` + columns + `
FROM commitments
WHERE user_id = $1 AND id = $2`

const countCompletedInRangeSQL = `
SELECT count(*)
FROM commitments
WHERE user_id = $1 AND status = 'done' AND completed_at >= $2 AND completed_at < $3`

// Create inserts a new commitment and returns the persisted domain.Commitment.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, c *domain.Commitment) (*domain.Commitment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	err := pgxscan.Get(ctx, q, &rw, createSQL,
		userID, c.ProjectID, c.EntryID, c.Title, c.Direction.String(), c.Status.String(),
		c.Counterparty, c.DueDate, c.Importance, c.Urgency, c.Notes, c.AIGenerated)
	if err != nil {
		return nil, postgres.MapError(err, "commitment", uuid.Nil)
	}

	return toDomain(rw), nil
}

// CreateBatch inserts commitments in one round trip via pgx batching and
// returns them in input order. An empty input returns an empty slice.
// Callers wanting all-or-nothing semantics run this inside TxManager.RunInTx.
func (r *Repo) CreateBatch(ctx context.Context, userID uuid.UUID, commitments []*domain.Commitment) ([]*domain.Commitment, error) {
	if len(commitments) == 0 {
		return []*domain.Commitment{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	for _, c := range commitments {
		batch.Queue(createSQL,
			userID, c.ProjectID, c.EntryID, c.Title, c.Direction.String(), c.Status.String(),
			c.Counterparty, c.DueDate, c.Importance, c.Urgency, c.Notes, c.AIGenerated)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	created := make([]*domain.Commitment, 0, len(commitments))
	for range commitments {
		rw, err := scanRow(br.QueryRow())
		if err != nil {
			return nil, postgres.MapError(err, "commitment", uuid.Nil)
		}
		created = append(created, toDomain(rw))
	}

	return created, nil
}

// GetByID returns a commitment by primary key scoped to the owning user.
// Returns domain.ErrNotFound if the commitment does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID, commitmentID uuid.UUID) (*domain.Commitment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, getByIDSQL, userID, commitmentID); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("commitment %s: %w", commitmentID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "commitment", commitmentID)
	}

	return toDomain(rw), nil
}

// List returns the user's commitments matching the filter, due-soonest first
// with undated commitments last. Returns an empty slice (not nil) on no
// matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.CommitmentFilter) ([]*domain.Commitment, error) {
	qb := squirrel.Select(columns).
		From("commitments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy(listOrder).
		PlaceholderFormat(squirrel.Dollar)

	if f.ProjectID != nil {
		qb = qb.Where(squirrel.Eq{"project_id": *f.ProjectID})
	}
	if f.Status != nil {
		qb = qb.Where(squirrel.Eq{"status": f.Status.String()})
	}
	if f.Direction != nil {
		qb = qb.Where(squirrel.Eq{"direction": f.Direction.String()})
	}
	if f.DueBefore != nil {
		qb = qb.Where(squirrel.Lt{"due_date": *f.DueBefore})
	}
	if f.Limit > 0 {
		qb = qb.Limit(uint64(f.Limit))
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list commitments: build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list commitments: %w", err)
	}

	result := make([]*domain.Commitment, len(rows))
	for i, rw := range rows {
		result[i] = toDomain(rw)
	}

	return result, nil
}

// Update applies a partial update scoped to the owning user and returns the
// updated commitment. completed_at is written only when SetCompletedAt is set,
// so the service layer fully owns the completedAt <-> status invariant.
// Returns domain.ErrNotFound when nothing matched.
func (r *Repo) Update(ctx context.Context, userID, commitmentID uuid.UUID, params domain.CommitmentUpdateParams) (*domain.Commitment, error) {
	qb := squirrel.Update("commitments").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "id": commitmentID}).
		Suffix("RETURNING " + columns).
		PlaceholderFormat(squirrel.Dollar)

	if params.Title != nil {
		qb = qb.Set("title", *params.Title)
	}
	if params.Status != nil {
		qb = qb.Set("status", params.Status.String())
	}
	if params.Counterparty != nil {
		qb = qb.Set("counterparty", *params.Counterparty)
	}
	if params.ClearDueDate {
		qb = qb.Set("due_date", nil)
	} else if params.DueDate != nil {
		qb = qb.Set("due_date", *params.DueDate)
	}
	if params.Importance != nil {
		qb = qb.Set("importance", *params.Importance)
	}
	if params.Urgency != nil {
		qb = qb.Set("urgency", *params.Urgency)
	}
	if params.Notes != nil {
		qb = qb.Set("notes", *params.Notes)
	}
	if params.SetCompletedAt {
		qb = qb.Set("completed_at", params.CompletedAt)
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("update commitment: build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("commitment %s: %w", commitmentID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "commitment", commitmentID)
	}

	return toDomain(rw), nil
}

// CountCompletedInRange counts commitments marked done in [from, to).
func (r *Repo) CountCompletedInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, countCompletedInRangeSQL, userID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("count completed commitments: %w", err)
	}

	return count, nil
}

// scanRow scans a single RETURNING row (used by batch results, where pgxscan
// cannot help).
func scanRow(r pgx.Row) (row, error) {
	var rw row
	err := r.Scan(
		&rw.ID, &rw.UserID, &rw.ProjectID, &rw.EntryID, &rw.Title, &rw.Direction, &rw.Status,
		&rw.Counterparty, &rw.DueDate, &rw.Importance, &rw.Urgency, &rw.Notes,
		&rw.AIGenerated, &rw.CompletedAt, &rw.CreatedAt, &rw.UpdatedAt)
	return rw, err
}

// toDomain converts a scanned row into a domain.Commitment.
func toDomain(rw row) *domain.Commitment {
	return &domain.Commitment{
		ID:           rw.ID,
		UserID:       rw.UserID,
		ProjectID:    rw.ProjectID,
		EntryID:      rw.EntryID,
		Title:        rw.Title,
		Direction:    domain.CommitmentDirection(rw.Direction),
		Status:       domain.CommitmentStatus(rw.Status),
		Counterparty: rw.Counterparty,
		DueDate:      rw.DueDate,
		Importance:   rw.Importance,
		Urgency:      rw.Urgency,
		Notes:        rw.Notes,
		AIGenerated:  rw.AIGenerated,
		CompletedAt:  rw.CompletedAt,
		CreatedAt:    rw.CreatedAt,
		UpdatedAt:    rw.UpdatedAt,
	}
}
