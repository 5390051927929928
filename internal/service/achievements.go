package service

import (
	"context"
	"time"

	"github.com/factflip/backend/internal/domain/achievement"
)

// recordProgress applies fn to the stored progress, unlocks whatever it newly
// earns and saves the result. It returns the newly unlocked achievements.
func (s *StudyService) recordProgress(ctx context.Context, fn func(p *achievement.Progress)) ([]achievement.Achievement, error) {
	s.progressMu.Lock()
	defer s.progressMu.Unlock()

	p, err := s.store.GetProgress(ctx)
	if err != nil {
		return nil, err
	}
	fn(p)

	unlockedList, err := s.store.ListUserAchievements(ctx)
	if err != nil {
		return nil, err
	}
	unlocked := make(map[string]bool, len(unlockedList))
	for _, u := range unlockedList {
		unlocked[u.ID] = true
	}

	now := s.now()
	earned := achievement.Evaluate(p, unlocked)
	for _, a := range earned {
		if _, err := s.store.UnlockAchievement(ctx, a.ID, now); err != nil {
			return nil, err
		}
		s.logger.Info("achievement unlocked", "achievement", a.ID, "xp", a.XP)
	}

	if err := s.store.SaveProgress(ctx, p); err != nil {
		return nil, err
	}
	return earned, nil
}

// Achievements returns the full catalog.
func (s *StudyService) Achievements() []achievement.Achievement {
	return achievement.Catalog()
}

// UnlockedAchievement is a catalog entry with the time it was earned.
type UnlockedAchievement struct {
	achievement.Achievement
	UnlockedAt time.Time
}

// UserAchievements returns the achievements earned so far, oldest first.
func (s *StudyService) UserAchievements(ctx context.Context) ([]UnlockedAchievement, error) {
	list, err := s.store.ListUserAchievements(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]UnlockedAchievement, 0, len(list))
	for _, u := range list {
		a, ok := achievement.Lookup(u.ID)
		if !ok {
			s.logger.Warn("unknown achievement in store", "achievement", u.ID)
			continue
		}
		out = append(out, UnlockedAchievement{Achievement: a, UnlockedAt: u.UnlockedAt})
	}
	return out, nil
}

// ProgressSummary is the user's XP and streak state as of now.
type ProgressSummary struct {
	CurrentStreak  int
	LongestStreak  int
	TotalXP        int
	Level          int
	FactsViewed    int
	Reviews        int
	DecksCompleted int
}

// Progress returns the user's progress. A streak whose last study day is
// older than yesterday is reported as zero.
func (s *StudyService) Progress(ctx context.Context) (*ProgressSummary, error) {
	s.progressMu.Lock()
	p, err := s.store.GetProgress(ctx)
	s.progressMu.Unlock()
	if err != nil {
		return nil, err
	}

	return &ProgressSummary{
		CurrentStreak:  p.StreakAt(s.now()),
		LongestStreak:  p.LongestStreak,
		TotalXP:        p.XP,
		Level:          p.Level(),
		FactsViewed:    p.FactsViewed,
		Reviews:        p.Reviews,
		DecksCompleted: p.DecksCompleted,
	}, nil
}
