package srs

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"
)

var reviewTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestReview_FailedRecallResets(t *testing.T) {
	params := DefaultParams()
	initial := State{
		EaseFactor:  2.5,
		Repetitions: 3,
		Interval:    15,
		LastReview:  reviewTime.AddDate(0, 0, -15),
		NextReview:  reviewTime,
	}

	for _, q := range []Quality{0, 1, 2} {
		next, err := params.Review(initial, q, reviewTime)
		if err != nil {
			t.Fatalf("quality %d: unexpected error: %v", q, err)
		}
		if next.Repetitions != 0 {
			t.Errorf("quality %d: expected repetitions 0, got %d", q, next.Repetitions)
		}
		if next.Interval != 1 {
			t.Errorf("quality %d: expected interval 1, got %d", q, next.Interval)
		}
		if next.EaseFactor != initial.EaseFactor {
			t.Errorf("quality %d: expected ease to stay %.2f, got %.2f", q, initial.EaseFactor, next.EaseFactor)
		}
		if !next.NextReview.Equal(reviewTime.AddDate(0, 0, 1)) {
			t.Errorf("quality %d: expected next review tomorrow, got %v", q, next.NextReview)
		}
	}
}

func TestReview_PenalizeFailures(t *testing.T) {
	params := DefaultParams()
	params.PenalizeFailures = true

	next, err := params.Review(State{EaseFactor: 2.5, Repetitions: 4, Interval: 20}, QualityBlackout, reviewTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2.5 + (0.1 - 5*(0.08 + 5*0.02)) = 1.7
	if math.Abs(next.EaseFactor-1.7) > 1e-9 {
		t.Errorf("expected ease 1.7, got %.4f", next.EaseFactor)
	}
	if next.Repetitions != 0 || next.Interval != 1 {
		t.Errorf("expected reset, got repetitions=%d interval=%d", next.Repetitions, next.Interval)
	}
}

func TestReview_IntervalProgression(t *testing.T) {
	params := DefaultParams()

	for _, q := range []Quality{3, 4, 5} {
		first, _ := params.Review(NewState(), q, reviewTime)
		if first.Interval != 1 {
			t.Errorf("quality %d: first interval = %d, want 1", q, first.Interval)
		}
		second, _ := params.Review(State{EaseFactor: 2.5, Repetitions: 1, Interval: 1}, q, reviewTime)
		if second.Interval != 6 {
			t.Errorf("quality %d: second interval = %d, want 6", q, second.Interval)
		}
	}
}

func TestReview_PerfectScenario(t *testing.T) {
	params := DefaultParams()
	state := NewState()

	state, _ = params.Review(state, QualityPerfect, reviewTime)
	if state.Repetitions != 1 || state.Interval != 1 {
		t.Fatalf("after first review: repetitions=%d interval=%d", state.Repetitions, state.Interval)
	}

	state, _ = params.Review(state, QualityPerfect, reviewTime.AddDate(0, 0, 1))
	if state.Repetitions != 2 || state.Interval != 6 {
		t.Fatalf("after second review: repetitions=%d interval=%d", state.Repetitions, state.Interval)
	}

	easeBefore := state.EaseFactor
	state, _ = params.Review(state, QualityPerfect, reviewTime.AddDate(0, 0, 7))
	want := int(math.Round(6 * easeBefore))
	if state.Repetitions != 3 || state.Interval != want {
		t.Fatalf("after third review: repetitions=%d interval=%d, want 3 and %d", state.Repetitions, state.Interval, want)
	}
	if want != 16 {
		t.Errorf("expected round(6*2.7) = 16, got %d", want)
	}
}

func TestReview_EaseAdjustment(t *testing.T) {
	params := DefaultParams()
	tests := []struct {
		quality Quality
		want    float64
	}{
		{QualityPerfect, 2.6},
		{QualityCorrectHesitation, 2.5},
		{QualityCorrectDifficult, 2.36},
	}

	for _, tt := range tests {
		next, _ := params.Review(State{EaseFactor: 2.5, Repetitions: 2, Interval: 6}, tt.quality, reviewTime)
		if math.Abs(next.EaseFactor-tt.want) > 1e-9 {
			t.Errorf("quality %d: ease = %.4f, want %.4f", tt.quality, next.EaseFactor, tt.want)
		}
	}
}

func TestReview_EaseFloor(t *testing.T) {
	params := DefaultParams()
	params.PenalizeFailures = true
	rng := rand.New(rand.NewSource(42))

	state := NewState()
	for i := 0; i < 500; i++ {
		var err error
		state, err = params.Review(state, Quality(rng.Intn(6)), reviewTime.AddDate(0, 0, i))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.EaseFactor < MinEaseFactor {
			t.Fatalf("step %d: ease %.4f dropped below %.1f", i, state.EaseFactor, MinEaseFactor)
		}
	}
}

func TestReview_MaturedIntervalNeverShrinks(t *testing.T) {
	params := DefaultParams()

	for _, q := range []Quality{3, 4, 5} {
		state := State{EaseFactor: 2.5, Repetitions: 2, Interval: 6, LastReview: reviewTime}
		for i := 0; i < 20; i++ {
			next, _ := params.Review(state, q, reviewTime.AddDate(0, 0, i))
			if next.Interval < state.Interval {
				t.Fatalf("quality %d step %d: interval shrank from %d to %d", q, i, state.Interval, next.Interval)
			}
			state = next
		}
	}
}

func TestReview_InvalidQuality(t *testing.T) {
	params := DefaultParams()
	initial := State{EaseFactor: 2.2, Repetitions: 2, Interval: 6}

	for _, q := range []Quality{-1, 6, 42} {
		next, err := params.Review(initial, q, reviewTime)
		if !errors.Is(err, ErrInvalidQuality) {
			t.Errorf("quality %d: expected ErrInvalidQuality, got %v", q, err)
		}
		if next != initial {
			t.Errorf("quality %d: state changed on invalid input", q)
		}
	}
}

func TestReview_MaxInterval(t *testing.T) {
	params := DefaultParams()
	params.MaxInterval = 365

	next, _ := params.Review(State{EaseFactor: 2.5, Repetitions: 8, Interval: 300}, QualityPerfect, reviewTime)
	if next.Interval != 365 {
		t.Errorf("expected interval capped at 365, got %d", next.Interval)
	}
}

func TestReview_ZeroEaseUsesDefault(t *testing.T) {
	params := DefaultParams()

	next, _ := params.Review(State{Repetitions: 2, Interval: 6}, QualityCorrectHesitation, reviewTime)
	if next.Interval != 15 {
		t.Errorf("expected round(6*2.5) = 15, got %d", next.Interval)
	}
}

func TestState_Due(t *testing.T) {
	if NewState().Due(reviewTime) {
		t.Error("new fact should not be due")
	}

	reviewed := State{LastReview: reviewTime.AddDate(0, 0, -3), NextReview: reviewTime.AddDate(0, 0, -1)}
	if !reviewed.Due(reviewTime) {
		t.Error("expected overdue fact to be due")
	}
	if got := reviewed.Overdue(reviewTime); got != 24*time.Hour {
		t.Errorf("expected overdue by 24h, got %v", got)
	}

	future := State{LastReview: reviewTime, NextReview: reviewTime.AddDate(0, 0, 2)}
	if future.Due(reviewTime) || future.Overdue(reviewTime) != 0 {
		t.Error("future fact should not be due")
	}
}
