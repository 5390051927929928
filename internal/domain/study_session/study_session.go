package studysession

import (
	"time"

	"github.com/factflip/backend/internal/domain/deck"
	"github.com/factflip/backend/internal/id"
)

// Session is one custom study session over a deck.
type Session struct {
	ID             string
	DeckName       string
	Config         Config
	StartedAt      time.Time
	EndedAt        *time.Time
	FactsStudied   int
	Answered       int
	CorrectAnswers int
}

// New starts a session on deckName at now.
func New(deckName string, config Config, now time.Time) *Session {
	if config.Mode == "" {
		config.Mode = ModeSpaced
	}
	if config.FactLimit != nil && *config.FactLimit <= 0 {
		config.FactLimit = nil
	}
	if config.TimeLimit != nil && *config.TimeLimit <= 0 {
		config.TimeLimit = nil
	}
	config.Tags = deck.NormalizeTags(config.Tags)

	return &Session{
		ID:        id.GenerateID(),
		DeckName:  deckName,
		Config:    config,
		StartedAt: now,
	}
}

// RecordView counts a fact handed out during the session.
func (s *Session) RecordView() {
	s.FactsStudied++
}

// RecordAnswer counts a graded answer.
func (s *Session) RecordAnswer(passed bool) {
	s.Answered++
	if passed {
		s.CorrectAnswers++
	}
}

// Accuracy is the percentage of answered facts recalled correctly.
func (s *Session) Accuracy() int {
	if s.Answered == 0 {
		return 0
	}
	return s.CorrectAnswers * 100 / s.Answered
}

// Active reports whether the session has not been ended.
func (s *Session) Active() bool {
	return s.EndedAt == nil
}

// Remaining returns the time left before the time limit, if there is one.
func (s *Session) Remaining(now time.Time) (time.Duration, bool) {
	if s.Config.TimeLimit == nil {
		return 0, false
	}
	left := s.StartedAt.Add(*s.Config.TimeLimit).Sub(now)
	if left < 0 {
		left = 0
	}
	return left, true
}

// Exhausted reports whether the fact cap or the time limit has been reached.
func (s *Session) Exhausted(now time.Time) bool {
	if s.Config.FactLimit != nil && s.FactsStudied >= *s.Config.FactLimit {
		return true
	}
	if left, ok := s.Remaining(now); ok && left == 0 {
		return true
	}
	return false
}

// End closes the session. Ending twice keeps the first end time.
func (s *Session) End(now time.Time) {
	if s.EndedAt != nil {
		return
	}
	s.EndedAt = &now
}
