package domain

// ProjectType classifies what a project tracks.
type ProjectType string

const (
	ProjectTypeProject      ProjectType = "project"
	ProjectTypeRelationship ProjectType = "relationship"
	ProjectTypeArea         ProjectType = "area"
)

func (t ProjectType) String() string { return string(t) }

func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeProject, ProjectTypeRelationship, ProjectTypeArea:
		return true
	}
	return false
}

// ProjectStatus represents the lifecycle state of a project.
// Projects are never hard-deleted; archival happens via status.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}
	return false
}

// EntryKind classifies what an entry records.
type EntryKind string

const (
	EntryKindMeeting    EntryKind = "meeting"
	EntryKindUpdate     EntryKind = "update"
	EntryKindDecision   EntryKind = "decision"
	EntryKindNote       EntryKind = "note"
	EntryKindPrep       EntryKind = "prep"
	EntryKindReflection EntryKind = "reflection"
	EntryKindSelfNote   EntryKind = "self_note"
)

func (k EntryKind) String() string { return string(k) }

func (k EntryKind) IsValid() bool {
	switch k {
	case EntryKindMeeting, EntryKindUpdate, EntryKindDecision, EntryKindNote,
		EntryKindPrep, EntryKindReflection, EntryKindSelfNote:
		return true
	}
	return false
}

// CaptureKind is the discriminator of a capture request. It is a superset of
// the simple entry kinds: "commitment" and "reflection" additionally create a
// linked sub-record.
type CaptureKind string

const (
	CaptureKindCommitment CaptureKind = "commitment"
	CaptureKindReflection CaptureKind = "reflection"
	CaptureKindMeeting    CaptureKind = "meeting"
	CaptureKindUpdate     CaptureKind = "update"
	CaptureKindDecision   CaptureKind = "decision"
	CaptureKindNote       CaptureKind = "note"
	CaptureKindPrep       CaptureKind = "prep"
)

func (k CaptureKind) String() string { return string(k) }

func (k CaptureKind) IsValid() bool {
	switch k {
	case CaptureKindCommitment, CaptureKindReflection, CaptureKindMeeting,
		CaptureKindUpdate, CaptureKindDecision, CaptureKindNote, CaptureKindPrep:
		return true
	}
	return false
}

// EntryKind maps a capture kind to the kind stored on the entry.
// A commitment capture stores its entry as a note: the entry is the textual
// record, the commitment row carries the structure.
func (k CaptureKind) EntryKind() EntryKind {
	if k == CaptureKindCommitment {
		return EntryKindNote
	}
	return EntryKind(k)
}

// CommitmentDirection says who owes whom.
type CommitmentDirection string

const (
	DirectionIOwe       CommitmentDirection = "i_owe"
	DirectionWaitingFor CommitmentDirection = "waiting_for"
)

func (d CommitmentDirection) String() string { return string(d) }

func (d CommitmentDirection) IsValid() bool {
	switch d {
	case DirectionIOwe, DirectionWaitingFor:
		return true
	}
	return false
}

// CommitmentStatus represents the tracking state of a commitment.
type CommitmentStatus string

const (
	CommitmentStatusOpen    CommitmentStatus = "open"
	CommitmentStatusDone    CommitmentStatus = "done"
	CommitmentStatusBlocked CommitmentStatus = "blocked"
	CommitmentStatusDropped CommitmentStatus = "dropped"
)

func (s CommitmentStatus) String() string { return string(s) }

func (s CommitmentStatus) IsValid() bool {
	switch s {
	case CommitmentStatusOpen, CommitmentStatusDone, CommitmentStatusBlocked, CommitmentStatusDropped:
		return true
	}
	return false
}

// ReflectionPeriod is the recurring window a reflection covers.
// Ad-hoc reflections have no period.
type ReflectionPeriod string

const (
	ReflectionPeriodWeek    ReflectionPeriod = "week"
	ReflectionPeriodMonth   ReflectionPeriod = "month"
	ReflectionPeriodQuarter ReflectionPeriod = "quarter"
)

func (p ReflectionPeriod) String() string { return string(p) }

func (p ReflectionPeriod) IsValid() bool {
	switch p {
	case ReflectionPeriodWeek, ReflectionPeriodMonth, ReflectionPeriodQuarter:
		return true
	}
	return false
}
