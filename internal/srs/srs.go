// Package srs implements the SM-2 spaced-repetition schedule used to decide
// when a fact is next due.
package srs

import (
	"errors"
	"math"
	"time"
)

// Quality is the self-reported recall score for a review, from 0 (complete
// blackout) to 5 (perfect response).
type Quality int

const (
	QualityBlackout          Quality = 0
	QualityIncorrect         Quality = 1
	QualityIncorrectFamiliar Quality = 2
	QualityCorrectDifficult  Quality = 3
	QualityCorrectHesitation Quality = 4
	QualityPerfect           Quality = 5
)

// ErrInvalidQuality is returned when a quality score falls outside [0,5].
var ErrInvalidQuality = errors.New("quality must be between 0 and 5")

// Valid reports whether q is within [0,5].
func (q Quality) Valid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// Passed reports whether the review counts as a successful recall.
func (q Quality) Passed() bool {
	return q >= QualityCorrectDifficult
}

// State holds the scheduling fields of a single fact.
type State struct {
	EaseFactor  float64
	Repetitions int
	Interval    int // days
	NextReview  time.Time
	LastReview  time.Time
}

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// NewState returns the state of a fact that has never been reviewed.
func NewState() State {
	return State{EaseFactor: DefaultEaseFactor}
}

// IsNew reports whether the fact has never been reviewed.
func (s State) IsNew() bool {
	return s.LastReview.IsZero()
}

// Due reports whether a reviewed fact has reached its next review time.
// New facts are never "due"; selection treats them separately.
func (s State) Due(now time.Time) bool {
	return !s.IsNew() && !s.NextReview.After(now)
}

// Overdue returns how far past its next review the fact is. It is zero for
// facts that are new or not yet due.
func (s State) Overdue(now time.Time) time.Duration {
	if !s.Due(now) {
		return 0
	}
	return now.Sub(s.NextReview)
}

// Params holds the tunables of the schedule.
type Params struct {
	DefaultEase    float64
	MinEase        float64
	FirstInterval  int
	SecondInterval int
	// PenalizeFailures applies the ease formula to failed reviews too.
	// When false a failed review leaves the ease factor untouched.
	PenalizeFailures bool
	// MaxInterval caps the interval in days. Zero means no cap.
	MaxInterval int
}

// DefaultParams returns the classic SM-2 constants.
func DefaultParams() *Params {
	return &Params{
		DefaultEase:    DefaultEaseFactor,
		MinEase:        MinEaseFactor,
		FirstInterval:  1,
		SecondInterval: 6,
	}
}

// Review computes the state that follows a review of the given quality at now.
// On an invalid quality the input state is returned unchanged together with
// ErrInvalidQuality.
func (p *Params) Review(state State, quality Quality, now time.Time) (State, error) {
	if !quality.Valid() {
		return state, ErrInvalidQuality
	}

	ease := state.EaseFactor
	if ease <= 0 {
		ease = p.DefaultEase
	}

	next := state
	if quality.Passed() {
		switch state.Repetitions {
		case 0:
			next.Interval = p.FirstInterval
		case 1:
			next.Interval = p.SecondInterval
		default:
			prev := state.Interval
			if prev < 1 {
				prev = 1
			}
			next.Interval = int(math.Round(float64(prev) * ease))
		}
		next.Repetitions = state.Repetitions + 1
		next.EaseFactor = p.adjustEase(ease, quality)
	} else {
		next.Repetitions = 0
		next.Interval = p.FirstInterval
		next.EaseFactor = ease
		if p.PenalizeFailures {
			next.EaseFactor = p.adjustEase(ease, quality)
		}
	}

	if p.MaxInterval > 0 && next.Interval > p.MaxInterval {
		next.Interval = p.MaxInterval
	}

	next.LastReview = now
	next.NextReview = now.AddDate(0, 0, next.Interval)
	return next, nil
}

// adjustEase applies EF' = EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02)) with the floor.
func (p *Params) adjustEase(ease float64, quality Quality) float64 {
	d := float64(QualityPerfect - quality)
	ease += 0.1 - d*(0.08+d*0.02)
	if ease < p.MinEase {
		ease = p.MinEase
	}
	return ease
}
