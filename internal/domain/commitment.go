package domain

import (
	"time"

	"github.com/google/uuid"
)

// Commitment is a tracked promise: either the user owes it (i_owe) or the
// user is waiting on someone else (waiting_for).
//
// Invariant: CompletedAt is non-nil if and only if Status is done. The
// commitment service sets it on the transition and clears it otherwise.
type Commitment struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ProjectID    uuid.UUID
	EntryID      *uuid.UUID
	Title        string
	Direction    CommitmentDirection
	Status       CommitmentStatus
	Counterparty *string
	DueDate      *time.Time
	Importance   int
	Urgency      int
	Notes        *string
	AIGenerated  bool
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CommitmentUpdateParams carries a partial update; nil fields are left
// unchanged. ClearDueDate unsets the due date (a nil DueDate means "keep").
type CommitmentUpdateParams struct {
	Title        *string
	Status       *CommitmentStatus
	Counterparty *string
	DueDate      *time.Time
	ClearDueDate bool
	Importance   *int
	Urgency      *int
	Notes        *string
	CompletedAt  *time.Time
	// SetCompletedAt signals that CompletedAt must be written even when nil
	// (clearing it on a transition away from done).
	SetCompletedAt bool
}
