package service

import (
	"context"
	"time"

	"github.com/factflip/backend/internal/domain/achievement"
	studysession "github.com/factflip/backend/internal/domain/study_session"
)

// CreateSession starts a custom session over the current deck, ending any
// session still running.
func (s *StudyService) CreateSession(ctx context.Context, config studysession.Config) (*studysession.Session, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == "" {
		return nil, ErrNoDeck
	}
	if s.session != nil {
		if _, err := s.finishSession(ctx, now); err != nil {
			return nil, err
		}
	}

	session := studysession.New(s.current, config, now)
	if err := s.store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	s.session = session
	s.resetCursor()

	s.logger.Info("session created",
		"session_id", session.ID,
		"deck", session.DeckName,
		"mode", session.Config.Mode,
	)
	snapshot := *session
	return &snapshot, nil
}

// SessionProgress describes the running session.
type SessionProgress struct {
	Session   *studysession.Session
	Remaining *time.Duration
}

// SessionProgress returns a snapshot of the current session, or ErrNoSession.
func (s *StudyService) SessionProgress() (*SessionProgress, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoSession
	}

	snapshot := *s.session
	progress := &SessionProgress{Session: &snapshot}
	if snapshot.Active() {
		if left, ok := snapshot.Remaining(now); ok {
			progress.Remaining = &left
		}
	}
	return progress, nil
}

// EndSession closes the current session and returns its final summary.
func (s *StudyService) EndSession(ctx context.Context) (*studysession.Session, []achievement.Achievement, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, nil, ErrNoSession
	}

	earned, err := s.finishSession(ctx, now)
	if err != nil {
		return nil, nil, err
	}

	summary := *s.session
	s.session = nil
	s.resetCursor()
	return &summary, earned, nil
}

// finishSession ends the current session once, persists it and credits it
// to progress. Callers hold mu.
func (s *StudyService) finishSession(ctx context.Context, now time.Time) ([]achievement.Achievement, error) {
	if !s.session.Active() {
		return nil, nil
	}

	s.session.End(now)
	if err := s.store.UpdateSession(ctx, s.session); err != nil {
		return nil, err
	}

	s.logger.Info("session ended",
		"session_id", s.session.ID,
		"facts_studied", s.session.FactsStudied,
		"accuracy", s.session.Accuracy(),
	)

	if s.session.FactsStudied == 0 {
		return nil, nil
	}
	return s.recordProgress(ctx, func(p *achievement.Progress) {
		p.SessionsCompleted++
	})
}
