package achievement_test

import (
	"testing"
	"time"

	"github.com/factflip/backend/internal/domain/achievement"
)

var day = time.Date(2026, 7, 10, 20, 0, 0, 0, time.UTC)

func ids(list []achievement.Achievement) map[string]bool {
	out := make(map[string]bool, len(list))
	for _, a := range list {
		out[a.ID] = true
	}
	return out
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range achievement.Catalog() {
		if seen[a.ID] {
			t.Errorf("duplicate achievement ID %q", a.ID)
		}
		seen[a.ID] = true
		if a.XP <= 0 {
			t.Errorf("achievement %q awards no XP", a.ID)
		}
	}
}

func TestEvaluate_FirstFact(t *testing.T) {
	p := &achievement.Progress{}
	p.RecordView(day)

	earned := achievement.Evaluate(p, nil)
	if !ids(earned)["first_fact"] {
		t.Fatalf("expected first_fact to be earned, got %v", earned)
	}
	// 1 XP for the view + 10 for the achievement
	if p.XP != 11 {
		t.Errorf("expected 11 XP, got %d", p.XP)
	}
}

func TestEvaluate_SkipsUnlocked(t *testing.T) {
	p := &achievement.Progress{FactsViewed: 12}

	earned := achievement.Evaluate(p, map[string]bool{"first_fact": true})
	got := ids(earned)
	if got["first_fact"] {
		t.Error("expected already-unlocked achievement to be skipped")
	}
	if !got["curious_mind"] {
		t.Error("expected curious_mind to be earned at 12 facts")
	}
}

func TestRecordReview_CorrectStreak(t *testing.T) {
	p := &achievement.Progress{}
	for i := 0; i < 10; i++ {
		p.RecordReview(true, day)
	}
	p.RecordReview(false, day)

	if p.CorrectStreak != 0 {
		t.Errorf("expected streak reset after a miss, got %d", p.CorrectStreak)
	}
	if p.BestCorrectStreak != 10 {
		t.Errorf("expected best streak 10, got %d", p.BestCorrectStreak)
	}
	if !ids(achievement.Evaluate(p, nil))["perfect_ten"] {
		t.Error("expected perfect_ten to be earned")
	}
}

func TestRecordStudyDay_Streak(t *testing.T) {
	p := &achievement.Progress{}

	p.RecordStudyDay(day)
	p.RecordStudyDay(day.Add(time.Hour))
	p.RecordStudyDay(day.AddDate(0, 0, 1))
	p.RecordStudyDay(day.AddDate(0, 0, 2))

	if p.CurrentStreak != 3 || p.LongestStreak != 3 {
		t.Fatalf("expected 3-day streak, got current=%d longest=%d", p.CurrentStreak, p.LongestStreak)
	}

	p.RecordStudyDay(day.AddDate(0, 0, 5))
	if p.CurrentStreak != 1 {
		t.Errorf("expected streak to restart after a gap, got %d", p.CurrentStreak)
	}
	if p.LongestStreak != 3 {
		t.Errorf("expected longest streak to stay 3, got %d", p.LongestStreak)
	}
}

func TestStreakAt_Lapses(t *testing.T) {
	p := &achievement.Progress{}
	p.RecordStudyDay(day)

	if p.StreakAt(day.AddDate(0, 0, 1)) != 1 {
		t.Error("expected streak to hold through the next day")
	}
	if p.StreakAt(day.AddDate(0, 0, 2)) != 0 {
		t.Error("expected streak to lapse after a missed day")
	}
}

func TestLevel(t *testing.T) {
	p := &achievement.Progress{XP: 250}
	if p.Level() != 3 {
		t.Errorf("expected level 3 at 250 XP, got %d", p.Level())
	}
}
