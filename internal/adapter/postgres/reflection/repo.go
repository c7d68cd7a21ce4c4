// Package reflection implements the Reflection repository using PostgreSQL.
package reflection

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

// Repo provides reflection persistence backed by PostgreSQL. Reflections are
// append-only, so the repository exposes no update or delete.
type Repo struct {
	db postgres.DB
}

// New creates a new reflection repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const columns = "id, user_id, project_id, entry_id, period_type, period_start, period_end, stats, answers, ai_questions, created_at"

type row struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	ProjectID   *uuid.UUID `db:"project_id"`
	EntryID     *uuid.UUID `db:"entry_id"`
	PeriodType  *string    `db:"period_type"`
	PeriodStart *time.Time `db:"period_start"`
	PeriodEnd   *time.Time `db:"period_end"`
	Stats       []byte     `db:"stats"`
	Answers     []byte     `db:"answers"`
	AIQuestions []byte     `db:"ai_questions"`
	CreatedAt   time.Time  `db:"created_at"`
}

const createSQL = `
INSERT INTO reflections (user_id, project_id, entry_id, period_type, period_start, period_end, stats, answers, ai_questions)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + columns

const getByIDSQL = `
SELECT ` + columns + `
FROM reflections
WHERE user_id = $1 AND id = $2`

const latestPeriodEndSQL = `
SELECT max(period_end)
FROM reflections
WHERE user_id = $1 AND period_type = $2`

// Create inserts a new reflection and returns the persisted record.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, refl *domain.Reflection) (*domain.Reflection, error) {
	var periodType *string
	if refl.Period != nil {
		pt := refl.Period.String()
		periodType = &pt
	}

	var stats []byte
	if refl.Stats != nil {
		var err error
		stats, err = json.Marshal(refl.Stats)
		if err != nil {
			return nil, fmt.Errorf("create reflection: marshal stats: %w", err)
		}
	}

	answers := refl.Answers
	if answers == nil {
		answers = []domain.QA{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("create reflection: marshal answers: %w", err)
	}

	questions := refl.AIQuestions
	if questions == nil {
		questions = []string{}
	}
	questionsJSON, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("create reflection: marshal ai questions: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	err = pgxscan.Get(ctx, q, &rw, createSQL,
		userID, refl.ProjectID, refl.EntryID, periodType, refl.PeriodStart, refl.PeriodEnd,
		stats, answersJSON, questionsJSON)
	if err != nil {
		return nil, postgres.MapError(err, "reflection", uuid.Nil)
	}

	return toDomain(rw)
}

// GetByID returns a reflection by primary key scoped to the owning user.
func (r *Repo) GetByID(ctx context.Context, userID, reflectionID uuid.UUID) (*domain.Reflection, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, getByIDSQL, userID, reflectionID); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("reflection %s: %w", reflectionID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "reflection", reflectionID)
	}

	return toDomain(rw)
}

// List returns the user's reflections matching the filter, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.ReflectionFilter) ([]*domain.Reflection, error) {
	qb := squirrel.Select(columns).
		From("reflections").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if f.ProjectID != nil {
		qb = qb.Where(squirrel.Eq{"project_id": *f.ProjectID})
	}
	if f.Period != nil {
		qb = qb.Where(squirrel.Eq{"period_type": f.Period.String()})
	}
	if f.Limit > 0 {
		qb = qb.Limit(uint64(f.Limit))
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list reflections: build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list reflections: %w", err)
	}

	result := make([]*domain.Reflection, 0, len(rows))
	for _, rw := range rows {
		refl, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		result = append(result, refl)
	}

	return result, nil
}

// LatestPeriodEnd returns the most recent period_end among the user's
// reflections of the given period type, or nil when there are none.
func (r *Repo) LatestPeriodEnd(ctx context.Context, userID uuid.UUID, period domain.ReflectionPeriod) (*time.Time, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var latest *time.Time
	if err := q.QueryRow(ctx, latestPeriodEndSQL, userID, period.String()).Scan(&latest); err != nil {
		return nil, fmt.Errorf("latest reflection period end: %w", err)
	}

	return latest, nil
}

func toDomain(rw row) (*domain.Reflection, error) {
	refl := &domain.Reflection{
		ID:          rw.ID,
		UserID:      rw.UserID,
		ProjectID:   rw.ProjectID,
		EntryID:     rw.EntryID,
		PeriodStart: rw.PeriodStart,
		PeriodEnd:   rw.PeriodEnd,
		CreatedAt:   rw.CreatedAt,
	}

	if rw.PeriodType != nil {
		p := domain.ReflectionPeriod(*rw.PeriodType)
		refl.Period = &p
	}
	if len(rw.Stats) > 0 {
		if err := json.Unmarshal(rw.Stats, &refl.Stats); err != nil {
			return nil, fmt.Errorf("reflection %s: unmarshal stats: %w", rw.ID, err)
		}
	}
	if len(rw.Answers) > 0 {
		if err := json.Unmarshal(rw.Answers, &refl.Answers); err != nil {
			return nil, fmt.Errorf("reflection %s: unmarshal answers: %w", rw.ID, err)
		}
	}
	if len(rw.AIQuestions) > 0 {
		if err := json.Unmarshal(rw.AIQuestions, &refl.AIQuestions); err != nil {
			return nil, fmt.Errorf("reflection %s: unmarshal ai questions: %w", rw.ID, err)
		}
	}

	return refl, nil
}
