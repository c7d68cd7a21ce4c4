package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hi5jack/compass-backend/internal/domain"
	"github.com/hi5jack/compass-backend/pkg/ctxutil"
)

// weeklyReflectionDue is how long after the last weekly reflection the
// dashboard starts flagging a new one.
const weeklyReflectionDue = 7 * 24 * time.Hour

// GetDashboard loads the four independent sub-aggregations concurrently and
// assembles the dashboard.
func (s *Service) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()

	var (
		commitments      []*domain.Commitment
		projects         []*domain.Project
		decisionsPending int
		lastWeeklyEnd    *time.Time
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		open := domain.CommitmentStatusOpen
		iOwe := domain.DirectionIOwe
		var err error
		commitments, err = s.commitments.List(gCtx, userID, domain.CommitmentFilter{
			Status:    &open,
			Direction: &iOwe,
		})
		if err != nil {
			return fmt.Errorf("load open commitments: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		active := domain.ProjectStatusActive
		var err error
		projects, err = s.projects.List(gCtx, userID, domain.ProjectFilter{Status: &active})
		if err != nil {
			return fmt.Errorf("load active projects: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		decisionsPending, err = s.entries.CountDecisionsNeedingReview(gCtx, userID)
		if err != nil {
			return fmt.Errorf("count decisions needing review: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		lastWeeklyEnd, err = s.reflections.LatestPeriodEnd(gCtx, userID, domain.ReflectionPeriodWeek)
		if err != nil {
			return fmt.Errorf("latest weekly reflection: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	pendingReflections := 0
	if lastWeeklyEnd == nil || now.Sub(*lastWeeklyEnd) > weeklyReflectionDue {
		pendingReflections = 1
	}

	idleAfter := time.Duration(s.cfg.IdleAfterDays) * 24 * time.Hour

	return &domain.Dashboard{
		WeeklyFocus:  WeeklyFocus(commitments, s.cfg.WeeklyFocusLimit),
		IdleProjects: IdleProjects(projects, now, idleAfter, s.cfg.IdleMinPriority, s.cfg.IdleLimit),
		Pending: domain.PendingCounts{
			DecisionsNeedingReview: decisionsPending,
			PendingReflections:     pendingReflections,
		},
	}, nil
}
