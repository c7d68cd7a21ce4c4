package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/hi5jack/compass-backend/internal/adapter/postgres/testutil"
	"github.com/hi5jack/compass-backend/internal/domain"
)

var projectColumns = []string{
	"id", "user_id", "name", "description", "type", "status",
	"priority", "owner_notes", "last_active_at", "created_at", "updated_at",
}

func projectRow(projectID, userID uuid.UUID, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(projectColumns).
		AddRow(projectID, userID, "Platform migration", nil, "project", "active",
			4, nil, nil, now, now)
}

func TestRepo_GetByID(t *testing.T) {
	projectID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).
					WithArgs(userID, projectID).
					WillReturnRows(projectRow(projectID, userID, now))
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).
					WithArgs(userID, projectID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockQuerier(t)
			repo := New(mock)
			tt.setup(mock)

			result, err := repo.GetByID(context.Background(), userID, projectID)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetByID() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetByID() unexpected error: %v", err)
			}
			if result.ID != projectID {
				t.Errorf("GetByID() returned id %s, want %s", result.ID, projectID)
			}
			if result.Status != domain.ProjectStatusActive {
				t.Errorf("GetByID() returned status %s, want active", result.Status)
			}

			testutil.ExpectationsWereMet(t, mock)
		})
	}
}

func TestRepo_List(t *testing.T) {
	projectID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	active := domain.ProjectStatusActive
	minPriority := 3

	tests := []struct {
		name    string
		filter  domain.ProjectFilter
		setup   func(mock pgxmock.PgxPoolIface)
		wantLen int
	}{
		{
			// squirrel resolves driver.Valuer args when building the
			// query, so uuid arguments arrive as their string form.
			name:   "no filter",
			filter: domain.ProjectFilter{},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).
					WithArgs(userID.String()).
					WillReturnRows(projectRow(projectID, userID, now))
			},
			wantLen: 1,
		},
		{
			name:   "status and priority filter",
			filter: domain.ProjectFilter{Status: &active, MinPriority: &minPriority, Limit: 10},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).
					WithArgs(userID.String(), "active", minPriority).
					WillReturnRows(projectRow(projectID, userID, now))
			},
			wantLen: 1,
		},
		{
			name:   "empty result",
			filter: domain.ProjectFilter{},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).
					WithArgs(userID.String()).
					WillReturnRows(pgxmock.NewRows(projectColumns))
			},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockQuerier(t)
			repo := New(mock)
			tt.setup(mock)

			result, err := repo.List(context.Background(), userID, tt.filter)
			if err != nil {
				t.Fatalf("List() unexpected error: %v", err)
			}
			if len(result) != tt.wantLen {
				t.Errorf("List() returned %d projects, want %d", len(result), tt.wantLen)
			}

			testutil.ExpectationsWereMet(t, mock)
		})
	}
}

func TestRepo_TouchLastActive(t *testing.T) {
	projectID := uuid.New()
	userID := uuid.New()
	activeAt := time.Now()

	tests := []struct {
		name  string
		setup func(mock pgxmock.PgxPoolIface)
	}{
		{
			name: "advances timestamp",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE projects`).
					WithArgs(userID, projectID, activeAt).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			// An older timestamp matches no row; the touch is a no-op,
			// not an error.
			name: "stale timestamp skipped",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE projects`).
					WithArgs(userID, projectID, activeAt).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockQuerier(t)
			repo := New(mock)
			tt.setup(mock)

			if err := repo.TouchLastActive(context.Background(), userID, projectID, activeAt); err != nil {
				t.Errorf("TouchLastActive() unexpected error: %v", err)
			}

			testutil.ExpectationsWereMet(t, mock)
		})
	}
}
