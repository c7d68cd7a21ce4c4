package domain

import (
	"time"

	"github.com/google/uuid"
)

// All filter fields are ANDed; nil fields impose no constraint.

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	Status      *ProjectStatus
	Type        *ProjectType
	MinPriority *int
	Limit       int
}

// EntryFilter narrows entry listings. Results order by occurred_at DESC.
type EntryFilter struct {
	ProjectID *uuid.UUID
	Kinds     []EntryKind
	From      *time.Time
	To        *time.Time
	Limit     int
}

// CommitmentFilter narrows commitment listings. Results order by
// due_date ASC NULLS LAST, then created_at DESC.
type CommitmentFilter struct {
	ProjectID *uuid.UUID
	Status    *CommitmentStatus
	Direction *CommitmentDirection
	DueBefore *time.Time
	Limit     int
}

// ReflectionFilter narrows reflection listings. Results order by created_at DESC.
type ReflectionFilter struct {
	ProjectID *uuid.UUID
	Period    *ReflectionPeriod
	Limit     int
}
