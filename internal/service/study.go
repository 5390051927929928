// Package service orchestrates studying: it owns the current-fact cursor,
// routes reviews through the scheduler and keeps progress and achievements
// up to date.
package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/factflip/backend/internal/domain/achievement"
	"github.com/factflip/backend/internal/domain/deck"
	studysession "github.com/factflip/backend/internal/domain/study_session"
	"github.com/factflip/backend/internal/render"
	"github.com/factflip/backend/internal/srs"
	"github.com/factflip/backend/internal/store"
)

var (
	ErrNoDeck       = errors.New("no deck loaded")
	ErrDeckNotFound = errors.New("deck not found")
	ErrFactNotFound = errors.New("fact not found")
	ErrNoSession    = errors.New("no active session")
)

// Config holds the tunables of a StudyService.
type Config struct {
	Params *srs.Params
	// SamplePath is the deck file imported by LoadSample when the sample deck
	// is not stored yet.
	SamplePath string
	// Workers bounds the parallel parsing in ImportDirectory.
	Workers int
	// Now and Rand are overridden in tests.
	Now  func() time.Time
	Rand *rand.Rand
}

// DefaultConfig returns the standard SM-2 schedule with a wall clock.
func DefaultConfig() Config {
	return Config{
		Params:  srs.DefaultParams(),
		Workers: 4,
		Now:     time.Now,
	}
}

// StudyService is safe for concurrent use.
type StudyService struct {
	store    store.Store
	params   *srs.Params
	markdown *render.Markdown
	logger   *slog.Logger
	now      func() time.Time

	samplePath string
	workers    int

	// mu guards the cursor below and rnd.
	mu       sync.Mutex
	rnd      *rand.Rand
	current  string
	mode     studysession.Mode
	shuffle  bool
	viewed   map[string]bool
	position int
	session  *studysession.Session

	// served holds facts handed out in the current spaced pass and not yet
	// answered; covered holds every fact served or answered in the pass.
	served  map[string]bool
	covered map[string]bool

	facts *factLocks

	// progressMu serializes read-modify-write of the progress row.
	progressMu sync.Mutex
}

// NewStudyService creates a StudyService over s.
func NewStudyService(s store.Store, cfg Config, logger *slog.Logger) *StudyService {
	if cfg.Params == nil {
		cfg.Params = srs.DefaultParams()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return &StudyService{
		store:      s,
		params:     cfg.Params,
		markdown:   render.NewMarkdown(),
		logger:     logger,
		now:        cfg.Now,
		samplePath: cfg.SamplePath,
		workers:    cfg.Workers,
		rnd:        cfg.Rand,
		mode:       studysession.ModeSpaced,
		viewed:     make(map[string]bool),
		served:     make(map[string]bool),
		covered:    make(map[string]bool),
		facts:      newFactLocks(),
	}
}

// Restore reloads the current deck, study mode and shuffle flag saved by a
// previous run.
func (s *StudyService) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name, err := s.store.GetSetting(ctx, store.SettingCurrentDeck); err == nil {
		exists, err := s.store.DeckExists(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			s.current = name
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	if value, err := s.store.GetSetting(ctx, store.SettingStudyMode); err == nil {
		if mode, err := studysession.ParseMode(value); err == nil {
			s.mode = mode
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	if value, err := s.store.GetSetting(ctx, store.SettingShuffle); err == nil {
		s.shuffle, _ = strconv.ParseBool(value)
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	s.logger.Info("study state restored", "deck", s.current, "mode", s.mode, "shuffle", s.shuffle)
	return nil
}

// resetCursor starts a fresh pass over the current deck. Callers hold mu.
func (s *StudyService) resetCursor() {
	clear(s.viewed)
	clear(s.served)
	clear(s.covered)
	s.position = 0
}

// SetMode changes how the next fact is picked.
func (s *StudyService) SetMode(ctx context.Context, mode studysession.Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SetSetting(ctx, store.SettingStudyMode, string(mode)); err != nil {
		return err
	}
	s.mode = mode
	s.resetCursor()
	return nil
}

// Mode returns the current study mode.
func (s *StudyService) Mode() studysession.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// ToggleShuffle flips shuffle and returns the new value.
func (s *StudyService) ToggleShuffle(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shuffle := !s.shuffle
	if err := s.store.SetSetting(ctx, store.SettingShuffle, strconv.FormatBool(shuffle)); err != nil {
		return s.shuffle, err
	}
	s.shuffle = shuffle
	return shuffle, nil
}

// NextFact is the result of NextFact. Fact is nil when nothing is due.
type NextFact struct {
	Fact            *store.FactState
	SessionComplete bool
	NewAchievements []achievement.Achievement
}

// NextFact picks the fact to study next from the current deck. tags narrows
// the pick to facts carrying any of them; an active session's tags apply when
// tags is empty.
func (s *StudyService) NextFact(ctx context.Context, tags []string) (*NextFact, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == "" {
		return nil, ErrNoDeck
	}

	mode := s.mode
	if s.session != nil {
		if !s.session.Active() {
			return &NextFact{SessionComplete: true}, nil
		}
		if s.session.Exhausted(now) {
			earned, err := s.finishSession(ctx, now)
			if err != nil {
				return nil, err
			}
			return &NextFact{SessionComplete: true, NewAchievements: earned}, nil
		}
		mode = s.session.Config.Mode
		if len(tags) == 0 {
			tags = s.session.Config.Tags
		}
	}

	facts, err := s.store.ListFactStates(ctx, s.current)
	if errors.Is(err, store.ErrNotFound) {
		s.current = ""
		return nil, ErrNoDeck
	}
	if err != nil {
		return nil, err
	}
	pool := eligible(facts, deck.NormalizeTags(tags))

	var (
		picked    store.FactState
		cycleDone bool
		ok        bool
	)
	switch mode {
	case studysession.ModeRandom:
		picked, cycleDone, ok = pickRandom(pool, s.viewed, s.rnd)
	case studysession.ModeSequential:
		picked, s.position, cycleDone, ok = pickSequential(pool, s.position)
	default:
		picked, cycleDone, ok = s.nextSpaced(facts, pool, now)
	}

	result := &NextFact{}
	if ok {
		result.Fact = &picked
		if s.session != nil {
			s.session.RecordView()
			if err := s.store.UpdateSession(ctx, s.session); err != nil {
				return nil, err
			}
		}
	}

	if !ok && !cycleDone {
		return result, nil
	}

	earned, err := s.recordProgress(ctx, func(p *achievement.Progress) {
		if ok {
			p.RecordView(now)
		}
		if cycleDone {
			p.DecksCompleted++
		}
	})
	if err != nil {
		return nil, err
	}
	result.NewAchievements = earned
	return result, nil
}

// nextSpaced serves the next fact of the spaced pass from pool, skipping facts
// already served and not yet answered. When the pass runs out of unserved
// facts it starts over, and cycleDone reports that every fact of the whole
// deck was served or answered along the way. Callers hold mu.
func (s *StudyService) nextSpaced(deckFacts, pool []store.FactState, now time.Time) (fs store.FactState, cycleDone, ok bool) {
	fs, ok = pickSpaced(unserved(pool, s.served), now, s.shuffle, s.rnd)
	if !ok {
		if covers(deckFacts, s.covered) {
			cycleDone = true
			clear(s.covered)
		}
		if forget(pool, s.served) {
			fs, ok = pickSpaced(pool, now, s.shuffle, s.rnd)
		}
	}
	if ok {
		s.served[fs.Fact.ID] = true
		s.covered[fs.Fact.ID] = true
	}
	return fs, cycleDone, ok
}

// SubmitAnswer applies a review of the given quality to a fact and returns its
// new scheduling state. Reviews of the same fact are serialized; an invalid
// quality or unknown fact leaves every state untouched.
func (s *StudyService) SubmitAnswer(ctx context.Context, factID string, quality int) (srs.State, []achievement.Achievement, error) {
	q := srs.Quality(quality)
	if !q.Valid() {
		return srs.State{}, nil, srs.ErrInvalidQuality
	}

	unlock := s.facts.Lock(factID)
	defer unlock()

	now := s.now()
	state, err := s.store.UpdateFactState(ctx, factID, func(current srs.State) (srs.State, error) {
		return s.params.Review(current, q, now)
	})
	if errors.Is(err, store.ErrNotFound) {
		return srs.State{}, nil, ErrFactNotFound
	}
	if err != nil {
		return srs.State{}, nil, err
	}

	s.mu.Lock()
	delete(s.served, factID)
	s.covered[factID] = true
	if s.session != nil && s.session.Active() {
		s.session.RecordAnswer(q.Passed())
		err = s.store.UpdateSession(ctx, s.session)
	}
	s.mu.Unlock()
	if err != nil {
		return state, nil, err
	}

	earned, err := s.recordProgress(ctx, func(p *achievement.Progress) {
		p.RecordReview(q.Passed(), now)
	})
	if err != nil {
		return state, nil, err
	}

	s.logger.Debug("fact reviewed",
		"fact_id", factID,
		"quality", quality,
		"interval", state.Interval,
		"ease_factor", state.EaseFactor,
	)
	return state, earned, nil
}
