package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hi5jack/compass-backend/internal/domain"
)

// PostgreSQL error codes the repositories care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// MapError translates pgx errors into domain sentinels so that services and
// handlers never see driver types. Context cancellation and deadline errors
// pass through unmapped; anything unrecognized is wrapped with the entity
// and id for the log line.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	wrap := func(cause error) error {
		return fmt.Errorf("%s %s: %w", entity, id, cause)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return wrap(err)
	case errors.Is(err, pgx.ErrNoRows):
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return wrap(domain.ErrAlreadyExists)
		case pgForeignKeyViolation:
			// A bad project or entry reference means the target row is gone.
			return wrap(domain.ErrNotFound)
		case pgCheckViolation:
			return wrap(domain.ErrValidation)
		}
	}

	return wrap(err)
}
