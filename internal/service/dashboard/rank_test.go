package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/internal/domain"
)

func openIOwe(title string, importance, urgency int, due *time.Time) *domain.Commitment {
	return &domain.Commitment{
		ID:         uuid.New(),
		Title:      title,
		Direction:  domain.DirectionIOwe,
		Status:     domain.CommitmentStatusOpen,
		Importance: importance,
		Urgency:    urgency,
		DueDate:    due,
	}
}

func TestWeeklyFocus_Ranking(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	item1 := openIOwe("imp5 urg2 undated", 5, 2, nil)
	item2 := openIOwe("imp5 urg4 day2", 5, 4, &day2)
	item3 := openIOwe("imp3 urg5 day1", 3, 5, &day1)

	got := WeeklyFocus([]*domain.Commitment{item1, item2, item3}, 5)

	want := []*domain.Commitment{item2, item1, item3}
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, want[i].Title)
		}
	}
}

func TestWeeklyFocus_DueDateBreaksTies(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	undated := openIOwe("undated", 4, 4, nil)
	late := openIOwe("late", 4, 4, &day2)
	early := openIOwe("early", 4, 4, &day1)

	got := WeeklyFocus([]*domain.Commitment{undated, late, early}, 5)

	wantTitles := []string{"early", "late", "undated"}
	for i, w := range wantTitles {
		if got[i].Title != w {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, w)
		}
	}
}

func TestWeeklyFocus_StableOnFullTies(t *testing.T) {
	t.Parallel()

	a := openIOwe("a", 4, 4, nil)
	b := openIOwe("b", 4, 4, nil)
	c := openIOwe("c", 4, 4, nil)

	got := WeeklyFocus([]*domain.Commitment{a, b, c}, 5)
	for i, w := range []string{"a", "b", "c"} {
		if got[i].Title != w {
			t.Errorf("position %d: got %q, want %q (input order)", i, got[i].Title, w)
		}
	}
}

func TestWeeklyFocus_FiltersAndLimits(t *testing.T) {
	t.Parallel()

	var input []*domain.Commitment
	for i := 0; i < 7; i++ {
		input = append(input, openIOwe("open", 3, 3, nil))
	}
	waiting := openIOwe("waiting", 5, 5, nil)
	waiting.Direction = domain.DirectionWaitingFor
	done := openIOwe("done", 5, 5, nil)
	done.Status = domain.CommitmentStatusDone
	input = append(input, waiting, done)

	got := WeeklyFocus(input, 5)
	if len(got) != 5 {
		t.Fatalf("got %d items, want 5", len(got))
	}
	for _, c := range got {
		if c.Direction != domain.DirectionIOwe || c.Status != domain.CommitmentStatusOpen {
			t.Errorf("non open/i_owe commitment in focus: %+v", c)
		}
	}
}

func TestIdleProjects(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	old := now.AddDate(0, 0, -60)
	recent := now.AddDate(0, 0, -10)

	project := func(name string, priority int, status domain.ProjectStatus, lastActive *time.Time, createdAt time.Time) *domain.Project {
		return &domain.Project{
			ID:           uuid.New(),
			Name:         name,
			Priority:     priority,
			Status:       status,
			LastActiveAt: lastActive,
			CreatedAt:    createdAt,
		}
	}

	staleHigh := project("stale high", 5, domain.ProjectStatusActive, &old, old)
	staleMid := project("stale mid", 3, domain.ProjectStatusActive, &old, old)
	staleLow := project("stale low", 2, domain.ProjectStatusActive, &old, old)
	fresh := project("fresh", 5, domain.ProjectStatusActive, &recent, old)
	archived := project("archived", 5, domain.ProjectStatusArchived, &old, old)
	neverTouched := project("never touched", 4, domain.ProjectStatusActive, nil, old)

	got := IdleProjects(
		[]*domain.Project{staleMid, fresh, staleHigh, archived, staleLow, neverTouched},
		now, 45*24*time.Hour, 3, 5,
	)

	wantNames := []string{"stale high", "never touched", "stale mid"}
	if len(got) != len(wantNames) {
		t.Fatalf("got %d projects, want %d", len(got), len(wantNames))
	}
	for i, w := range wantNames {
		if got[i].Name != w {
			t.Errorf("position %d: got %q, want %q", i, got[i].Name, w)
		}
	}
}

func TestIdleProjects_Limit(t *testing.T) {
	t.Parallel()

	now := time.Now()
	old := now.AddDate(0, 0, -90)

	var input []*domain.Project
	for i := 0; i < 8; i++ {
		input = append(input, &domain.Project{
			ID:           uuid.New(),
			Status:       domain.ProjectStatusActive,
			Priority:     4,
			LastActiveAt: &old,
			CreatedAt:    old,
		})
	}

	got := IdleProjects(input, now, 45*24*time.Hour, 3, 5)
	if len(got) != 5 {
		t.Errorf("got %d projects, want 5", len(got))
	}
}
