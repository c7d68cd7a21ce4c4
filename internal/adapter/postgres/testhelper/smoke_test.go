package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	userID := uuid.New()
	projectID := SeedProject(t, pool, userID, "smoke")

	var name string
	err := pool.QueryRow(
		context.Background(),
		`SELECT name FROM projects WHERE user_id = $1 AND id = $2`,
		userID, projectID,
	).Scan(&name)
	if err != nil {
		t.Fatalf("expected project in DB, got error: %v", err)
	}

	if name != "smoke" {
		t.Fatalf("expected name %q, got %q", "smoke", name)
	}
}

func TestSetupTestDB_EntryCascade(t *testing.T) {
	pool := SetupTestDB(t)
	ctx := context.Background()

	userID := uuid.New()
	projectID := SeedProject(t, pool, userID, "cascade")
	entryID := SeedEntry(t, pool, userID, projectID, "note", "weekly sync", time.Now())

	if _, err := pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, projectID); err != nil {
		t.Fatalf("delete project: %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM entries WHERE id = $1`, entryID).Scan(&count); err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected entry to cascade with its project, found %d rows", count)
	}
}
