package domain

import (
	"time"

	"github.com/google/uuid"
)

// Priority bounds shared by projects and commitments.
const (
	MinPriority = 1
	MaxPriority = 5

	DefaultImportance = 3
	DefaultUrgency    = 3
)

// Project is a user's tracked workstream, relationship, or area of
// responsibility. LastActiveAt advances monotonically whenever an entry is
// captured against it and is never moved backward.
type Project struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Description  *string
	Type         ProjectType
	Status       ProjectStatus
	Priority     int
	OwnerNotes   *string
	LastActiveAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActivityAt returns the reference time for staleness checks: the last
// capture, or creation time for projects that never saw an entry.
func (p *Project) ActivityAt() time.Time {
	if p.LastActiveAt != nil {
		return *p.LastActiveAt
	}
	return p.CreatedAt
}

// ProjectUpdateParams carries a partial update; nil fields are left unchanged.
type ProjectUpdateParams struct {
	Name        *string
	Description *string
	Type        *ProjectType
	Status      *ProjectStatus
	Priority    *int
	OwnerNotes  *string
}
