package dashboard

import (
	"sort"
	"time"

	"github.com/hi5jack/compass-backend/internal/domain"
)

// WeeklyFocus ranks open i_owe commitments by importance desc, urgency desc,
// then due date asc with undated commitments last, and returns the top limit.
// The sort is stable: ties keep input order. Input already filtered to open
// i_owe is fine; anything else is filtered out here.
func WeeklyFocus(commitments []*domain.Commitment, limit int) []*domain.Commitment {
	focus := make([]*domain.Commitment, 0, len(commitments))
	for _, c := range commitments {
		if c.Status == domain.CommitmentStatusOpen && c.Direction == domain.DirectionIOwe {
			focus = append(focus, c)
		}
	}

	sort.SliceStable(focus, func(i, j int) bool {
		a, b := focus[i], focus[j]
		if a.Importance != b.Importance {
			return a.Importance > b.Importance
		}
		if a.Urgency != b.Urgency {
			return a.Urgency > b.Urgency
		}
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return false
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		default:
			return a.DueDate.Before(*b.DueDate)
		}
	})

	if limit > 0 && len(focus) > limit {
		focus = focus[:limit]
	}
	return focus
}

// IdleProjects returns active projects of priority >= minPriority whose last
// activity is older than idleAfter before now, sorted by priority descending,
// top limit. Projects that never saw a capture fall back to their creation
// time.
func IdleProjects(projects []*domain.Project, now time.Time, idleAfter time.Duration, minPriority, limit int) []*domain.Project {
	cutoff := now.Add(-idleAfter)

	idle := make([]*domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.Status != domain.ProjectStatusActive || p.Priority < minPriority {
			continue
		}
		if p.ActivityAt().Before(cutoff) {
			idle = append(idle, p)
		}
	}

	sort.SliceStable(idle, func(i, j int) bool {
		return idle[i].Priority > idle[j].Priority
	})

	if limit > 0 && len(idle) > limit {
		idle = idle[:limit]
	}
	return idle
}
