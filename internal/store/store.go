package store

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/factflip/backend/internal/domain/achievement"
	"github.com/factflip/backend/internal/domain/deck"
	studysession "github.com/factflip/backend/internal/domain/study_session"
	"github.com/factflip/backend/internal/srs"
)

var (
	ErrNotFound = errors.New("not found")
)

// Setting keys persisted in app_state.
const (
	SettingCurrentDeck = "current_deck"
	SettingStudyMode   = "study_mode"
	SettingShuffle     = "shuffle"
)

// FactState pairs a fact with its scheduling state.
type FactState struct {
	Fact  deck.Fact
	State srs.State
}

// UnlockedAchievement records when an achievement was earned.
type UnlockedAchievement struct {
	ID         string
	UnlockedAt time.Time
}

// StateUpdate computes a new scheduling state from the current one.
// Returning an error aborts the update.
type StateUpdate func(current srs.State) (srs.State, error)

// Store is the persistence contract used by the services.
type Store interface {
	// Decks
	SaveDeck(ctx context.Context, d *deck.Deck, now time.Time) error
	GetDeck(ctx context.Context, name string) (*deck.Deck, error)
	ListDeckNames(ctx context.Context) ([]string, error)
	DeleteDeck(ctx context.Context, name string) error
	DeckExists(ctx context.Context, name string) (bool, error)

	// Facts
	GetFact(ctx context.Context, factID string) (*FactState, error)
	ListFactStates(ctx context.Context, deckName string) ([]FactState, error)
	UpdateFactState(ctx context.Context, factID string, fn StateUpdate) (srs.State, error)
	UpdateFactTags(ctx context.Context, factID string, tags []string) ([]string, error)
	ListTags(ctx context.Context, deckName string) ([]string, error)

	// Sessions
	SaveSession(ctx context.Context, session *studysession.Session) error
	UpdateSession(ctx context.Context, session *studysession.Session) error
	ListSessions(ctx context.Context, limit int) ([]*studysession.Session, error)

	// Progress
	GetProgress(ctx context.Context) (*achievement.Progress, error)
	SaveProgress(ctx context.Context, p *achievement.Progress) error
	ListUserAchievements(ctx context.Context) ([]UnlockedAchievement, error)
	UnlockAchievement(ctx context.Context, achievementID string, at time.Time) (bool, error)

	// App state
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	Close() error
}
