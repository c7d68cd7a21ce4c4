// Package project implements the Project repository using PostgreSQL.
package project

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/adapter/postgres"
	"github.com/hi5jack/compass-backend/internal/domain"
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new project repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const columns = "id, user_id, name, description, type, status, priority, owner_notes, last_active_at, created_at, updated_at"

// row mirrors one projects row for scanning.
type row struct {
	ID           uuid.UUID  `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	Name         string     `db:"name"`
	Description  *string    `db:"description"`
	Type         string     `db:"type"`
	Status       string     `db:"status"`
	Priority     int        `db:"priority"`
	OwnerNotes   *string    `db:"owner_notes"`
	LastActiveAt *time.Time `db:"last_active_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

const createSQL = `
INSERT INTO projects (user_id, name, description, type, status, priority, owner_notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + columns

const getByIDSQL = `
SELECT ` + columns + `
FROM projects
WHERE user_id = $1 AND id = $2`

// touchLastActiveSQL advances last_active_at only forward. Zero rows affected
// means either the timestamp would regress (benign, skipped) or the project is
// gone; callers verify existence before capturing.
const touchLastActiveSQL = `
UPDATE projects
SET last_active_at = $3, updated_at = now()
WHERE user_id = $1 AND id = $2
  AND (last_active_at IS NULL OR last_active_at < $3)`

// Create inserts a new project and returns the persisted domain.Project.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, p *domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	err := pgxscan.Get(ctx, q, &rw, createSQL,
		userID, p.Name, p.Description, p.Type.String(), p.Status.String(), p.Priority, p.OwnerNotes)
	if err != nil {
		return nil, postgres.MapError(err, "project", uuid.Nil)
	}

	return toDomain(rw), nil
}

// GetByID returns a project by primary key scoped to the owning user.
// A project that exists but belongs to another user also yields
// domain.ErrNotFound; callers cannot tell the two cases apart.
func (r *Repo) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, getByIDSQL, userID, projectID); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "project", projectID)
	}

	return toDomain(rw), nil
}

// List returns the user's projects matching the filter, ordered by priority
// descending then name. Returns an empty slice (not nil) on no matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.ProjectFilter) ([]*domain.Project, error) {
	qb := squirrel.Select(columns).
		From("projects").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("priority DESC", "name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if f.Status != nil {
		qb = qb.Where(squirrel.Eq{"status": f.Status.String()})
	}
	if f.Type != nil {
		qb = qb.Where(squirrel.Eq{"type": f.Type.String()})
	}
	if f.MinPriority != nil {
		qb = qb.Where(squirrel.GtOrEq{"priority": *f.MinPriority})
	}
	if f.Limit > 0 {
		qb = qb.Limit(uint64(f.Limit))
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list projects: build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]*domain.Project, len(rows))
	for i, rw := range rows {
		projects[i] = toDomain(rw)
	}

	return projects, nil
}

// Update applies a partial update scoped to the owning user and returns the
// updated project. Returns domain.ErrNotFound when nothing matched.
func (r *Repo) Update(ctx context.Context, userID, projectID uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error) {
	qb := squirrel.Update("projects").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "id": projectID}).
		Suffix("RETURNING " + columns).
		PlaceholderFormat(squirrel.Dollar)

	if params.Name != nil {
		qb = qb.Set("name", *params.Name)
	}
	if params.Description != nil {
		qb = qb.Set("description", *params.Description)
	}
	if params.Type != nil {
		qb = qb.Set("type", params.Type.String())
	}
	if params.Status != nil {
		qb = qb.Set("status", params.Status.String())
	}
	if params.Priority != nil {
		qb = qb.Set("priority", *params.Priority)
	}
	if params.OwnerNotes != nil {
		qb = qb.Set("owner_notes", *params.OwnerNotes)
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("update project: build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "project", projectID)
	}

	return toDomain(rw), nil
}

// TouchLastActive advances the project's last_active_at to activeAt if and
// only if that moves it forward. A skipped (regressive) touch is not an error.
func (r *Repo) TouchLastActive(ctx context.Context, userID, projectID uuid.UUID, activeAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, touchLastActiveSQL, userID, projectID, activeAt); err != nil {
		return postgres.MapError(err, "project", projectID)
	}

	return nil
}

// toDomain converts a scanned row into a domain.Project.
func toDomain(rw row) *domain.Project {
	return &domain.Project{
		ID:           rw.ID,
		UserID:       rw.UserID,
		Name:         rw.Name,
		Description:  rw.Description,
		Type:         domain.ProjectType(rw.Type),
		Status:       domain.ProjectStatus(rw.Status),
		Priority:     rw.Priority,
		OwnerNotes:   rw.OwnerNotes,
		LastActiveAt: rw.LastActiveAt,
		CreatedAt:    rw.CreatedAt,
		UpdatedAt:    rw.UpdatedAt,
	}
}
