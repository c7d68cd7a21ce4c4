package domain

// PendingCounts are the dashboard's attention counters.
type PendingCounts struct {
	// DecisionsNeedingReview counts decision entries with no AI summary yet.
	DecisionsNeedingReview int
	// PendingReflections is 1 when the weekly reflection is due (no week
	// reflection ended within the last 7 days), else 0.
	PendingReflections int
}

// Dashboard is the aggregated main view: ranked weekly focus, stale
// high-priority projects, and pending counters.
type Dashboard struct {
	WeeklyFocus  []*Commitment
	IdleProjects []*Project
	Pending      PendingCounts
}
