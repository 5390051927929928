package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	studysession "github.com/factflip/backend/internal/domain/study_session"
	"github.com/factflip/backend/internal/store"
)

const recentSessions = 10

// StudyStats summarizes the current deck and recent sessions.
type StudyStats struct {
	TotalFacts    int
	ReviewedFacts int
	DueFacts      int
	NewFacts      int
	AvgEaseFactor float64
	Sessions      []*studysession.Session
}

// StudyStats gathers deck and session statistics concurrently.
func (s *StudyService) StudyStats(ctx context.Context) (*StudyStats, error) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	now := s.now()
	stats := &StudyStats{}

	g, gctx := errgroup.WithContext(ctx)

	if current != "" {
		g.Go(func() error {
			facts, err := s.store.ListFactStates(gctx, current)
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}

			var easeSum float64
			stats.TotalFacts = len(facts)
			for _, fs := range facts {
				if fs.State.IsNew() {
					stats.NewFacts++
					continue
				}
				stats.ReviewedFacts++
				easeSum += fs.State.EaseFactor
				if fs.State.Due(now) {
					stats.DueFacts++
				}
			}
			if stats.ReviewedFacts > 0 {
				stats.AvgEaseFactor = easeSum / float64(stats.ReviewedFacts)
			}
			return nil
		})
	}

	g.Go(func() error {
		sessions, err := s.store.ListSessions(gctx, recentSessions)
		if err != nil {
			return err
		}
		stats.Sessions = sessions
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
