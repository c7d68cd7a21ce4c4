package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedProject inserts a minimal active project and returns its id.
func SeedProject(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(), `
		INSERT INTO projects (user_id, name, type, status, priority)
		VALUES ($1, $2, 'project', 'active', 3)
		RETURNING id`, userID, name).Scan(&id)
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}

	return id
}

// SeedEntry inserts an entry of the given kind and returns its id.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID, projectID uuid.UUID, kind, title string, occurredAt time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(), `
		INSERT INTO entries (user_id, project_id, kind, title, raw_content, occurred_at)
		VALUES ($1, $2, $3, $4, $4, $5)
		RETURNING id`, userID, projectID, kind, title, occurredAt).Scan(&id)
	if err != nil {
		t.Fatalf("seed entry: %v", err)
	}

	return id
}

// SeedCommitment inserts an open commitment and returns its id.
func SeedCommitment(t *testing.T, pool *pgxpool.Pool, userID, projectID uuid.UUID, title string, dueDate *time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(), `
		INSERT INTO commitments (user_id, project_id, title, direction, status, due_date, importance, urgency)
		VALUES ($1, $2, $3, 'i_owe', 'open', $4, 3, 3)
		RETURNING id`, userID, projectID, title, dueDate).Scan(&id)
	if err != nil {
		t.Fatalf("seed commitment: %v", err)
	}

	return id
}
