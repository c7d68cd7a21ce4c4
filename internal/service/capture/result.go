package capture

import "github.com/google/uuid"

// Result reports what one capture persisted. CommitmentID and ReflectionID
// are set only when the corresponding sub-record was created. On a partial
// capture the result is returned alongside a *domain.PartialCaptureError so
// the caller still learns the entry id.
type Result struct {
	EntryID      uuid.UUID
	CommitmentID *uuid.UUID
	ReflectionID *uuid.UUID
}
