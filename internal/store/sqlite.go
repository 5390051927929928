package store

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/factflip/backend/internal/domain/deck"
	"github.com/factflip/backend/internal/srs"
)

const schema = `
CREATE TABLE IF NOT EXISTS decks (
    name TEXT PRIMARY KEY,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS facts (
    id TEXT PRIMARY KEY,
    deck_name TEXT NOT NULL,
    content TEXT NOT NULL,
    back TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL,
    FOREIGN KEY (deck_name) REFERENCES decks(name) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_facts_deck ON facts(deck_name, position);

CREATE TABLE IF NOT EXISTS fact_tags (
    fact_id TEXT NOT NULL,
    tag TEXT NOT NULL,
    PRIMARY KEY (fact_id, tag),
    FOREIGN KEY (fact_id) REFERENCES facts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS fact_states (
    fact_id TEXT PRIMARY KEY,
    ease_factor REAL NOT NULL,
    repetitions INTEGER NOT NULL,
    interval_days INTEGER NOT NULL,
    next_review INTEGER,
    last_review INTEGER
);

CREATE TABLE IF NOT EXISTS study_sessions (
    id TEXT PRIMARY KEY,
    deck_name TEXT NOT NULL,
    mode TEXT NOT NULL,
    fact_limit INTEGER,
    time_limit_seconds INTEGER,
    tags TEXT NOT NULL DEFAULT '[]',
    started_at INTEGER NOT NULL,
    ended_at INTEGER,
    facts_studied INTEGER NOT NULL DEFAULT 0,
    answered INTEGER NOT NULL DEFAULT 0,
    correct_answers INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS progress (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    facts_viewed INTEGER NOT NULL DEFAULT 0,
    reviews INTEGER NOT NULL DEFAULT 0,
    correct_streak INTEGER NOT NULL DEFAULT 0,
    best_correct_streak INTEGER NOT NULL DEFAULT 0,
    decks_uploaded INTEGER NOT NULL DEFAULT 0,
    decks_completed INTEGER NOT NULL DEFAULT 0,
    sessions_completed INTEGER NOT NULL DEFAULT 0,
    current_streak INTEGER NOT NULL DEFAULT 0,
    longest_streak INTEGER NOT NULL DEFAULT 0,
    last_study_day TEXT NOT NULL DEFAULT '',
    xp INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS user_achievements (
    achievement_id TEXT PRIMARY KEY,
    unlocked_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS app_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens (or creates) the database at dbPath. Use ":memory:" for a
// throwaway database.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	// SQLite allows one writer; a single connection also keeps ":memory:" alive.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create schema")
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func nullUnix(t time.Time) sql.NullInt64 {
	if t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

func fromUnix(v sql.NullInt64) time.Time {
	if !v.Valid {
		return time.Time{}
	}
	return time.Unix(v.Int64, 0)
}

// ============================================================================
// Decks
// ============================================================================

// SaveDeck replaces the deck's facts and tags, stamping the deck row with now.
// Scheduling state of facts whose ID survives the replacement is kept; state
// of dropped facts is removed.
func (s *SQLiteStore) SaveDeck(ctx context.Context, d *deck.Deck, now time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO decks (name, created_at, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET updated_at = excluded.updated_at
	`, d.Name, now.Unix(), now.Unix())
	if err != nil {
		return errors.Wrapf(err, "failed to save deck %q", d.Name)
	}

	keep := make(map[string]bool, len(d.Facts))
	for _, f := range d.Facts {
		keep[f.ID] = true
	}

	oldIDs, err := deckFactIDs(ctx, tx, d.Name)
	if err != nil {
		return err
	}
	for _, factID := range oldIDs {
		if keep[factID] {
			continue
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM fact_states WHERE fact_id = ?", factID); err != nil {
			return errors.Wrap(err, "failed to drop fact state")
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM fact_tags WHERE fact_id IN (SELECT id FROM facts WHERE deck_name = ?)", d.Name); err != nil {
		return errors.Wrap(err, "failed to clear fact tags")
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM facts WHERE deck_name = ?", d.Name); err != nil {
		return errors.Wrap(err, "failed to clear facts")
	}

	for i, f := range d.Facts {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO facts (id, deck_name, content, back, image, position) VALUES (?, ?, ?, ?, ?, ?)",
			f.ID, d.Name, f.Content, f.Back, f.Image, i,
		)
		if err != nil {
			return errors.Wrapf(err, "failed to insert fact %s", f.ID)
		}
		for _, tag := range f.Tags {
			if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO fact_tags (fact_id, tag) VALUES (?, ?)", f.ID, tag); err != nil {
				return errors.Wrap(err, "failed to insert fact tag")
			}
		}
	}

	return errors.Wrap(tx.Commit(), "failed to commit deck")
}

func deckFactIDs(ctx context.Context, tx *sql.Tx, deckName string) ([]string, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id FROM facts WHERE deck_name = ?", deckName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fact ids")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var factID string
		if err := rows.Scan(&factID); err != nil {
			return nil, errors.Wrap(err, "failed to scan fact id")
		}
		ids = append(ids, factID)
	}
	return ids, rows.Err()
}

func (s *SQLiteStore) GetDeck(ctx context.Context, name string) (*deck.Deck, error) {
	var created, updated sql.NullInt64
	err := s.db.QueryRowContext(ctx, "SELECT created_at, updated_at FROM decks WHERE name = ?", name).Scan(&created, &updated)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get deck %q", name)
	}

	states, err := s.ListFactStates(ctx, name)
	if err != nil {
		return nil, err
	}

	d := deck.New(name)
	d.CreatedAt = fromUnix(created)
	d.UpdatedAt = fromUnix(updated)
	for _, fs := range states {
		d.Facts = append(d.Facts, fs.Fact)
	}
	return d, nil
}

func (s *SQLiteStore) ListDeckNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM decks ORDER BY name")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list decks")
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "failed to scan deck name")
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteDeck removes the deck together with its facts, tags and states.
func (s *SQLiteStore) DeleteDeck(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM fact_states WHERE fact_id IN (SELECT id FROM facts WHERE deck_name = ?)", name); err != nil {
		return errors.Wrap(err, "failed to delete fact states")
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM fact_tags WHERE fact_id IN (SELECT id FROM facts WHERE deck_name = ?)", name); err != nil {
		return errors.Wrap(err, "failed to delete fact tags")
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM facts WHERE deck_name = ?", name); err != nil {
		return errors.Wrap(err, "failed to delete facts")
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM decks WHERE name = ?", name)
	if err != nil {
		return errors.Wrapf(err, "failed to delete deck %q", name)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return errors.Wrap(tx.Commit(), "failed to commit deck deletion")
}

func (s *SQLiteStore) DeckExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM decks WHERE name = ?)", name).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "failed to check deck")
	}
	return exists, nil
}

// ============================================================================
// Facts
// ============================================================================

const factStateColumns = `
	f.id, f.deck_name, f.content, f.back, f.image, f.position,
	st.ease_factor, st.repetitions, st.interval_days, st.next_review, st.last_review,
	COALESCE((SELECT GROUP_CONCAT(tag, char(31)) FROM fact_tags WHERE fact_id = f.id), '')
`

const tagSeparator = "\x1f"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFactState(row rowScanner) (FactState, error) {
	var (
		fs         FactState
		ease       sql.NullFloat64
		reps       sql.NullInt64
		interval   sql.NullInt64
		nextReview sql.NullInt64
		lastReview sql.NullInt64
		tagsJoined string
	)
	err := row.Scan(
		&fs.Fact.ID, &fs.Fact.DeckName, &fs.Fact.Content, &fs.Fact.Back, &fs.Fact.Image, &fs.Fact.Position,
		&ease, &reps, &interval, &nextReview, &lastReview,
		&tagsJoined,
	)
	if err != nil {
		return fs, err
	}

	fs.Fact.Tags = []string{}
	if tagsJoined != "" {
		fs.Fact.Tags = strings.Split(tagsJoined, tagSeparator)
		sort.Strings(fs.Fact.Tags)
	}

	fs.State = srs.NewState()
	if ease.Valid {
		fs.State.EaseFactor = ease.Float64
		fs.State.Repetitions = int(reps.Int64)
		fs.State.Interval = int(interval.Int64)
		fs.State.NextReview = fromUnix(nextReview)
		fs.State.LastReview = fromUnix(lastReview)
	}
	return fs, nil
}

func (s *SQLiteStore) GetFact(ctx context.Context, factID string) (*FactState, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+factStateColumns+`
		FROM facts f LEFT JOIN fact_states st ON st.fact_id = f.id
		WHERE f.id = ?
	`, factID)

	fs, err := scanFactState(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load fact %s", factID)
	}
	return &fs, nil
}

// ListFactStates returns the deck's facts in deck order with their scheduling
// state. The result comes from a single statement, so it is a consistent
// snapshot. A deck that does not exist yields ErrNotFound.
func (s *SQLiteStore) ListFactStates(ctx context.Context, deckName string) ([]FactState, error) {
	exists, err := s.DeckExists(ctx, deckName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+factStateColumns+`
		FROM facts f LEFT JOIN fact_states st ON st.fact_id = f.id
		WHERE f.deck_name = ?
		ORDER BY f.position
	`, deckName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list facts of %q", deckName)
	}
	defer rows.Close()

	out := []FactState{}
	for rows.Next() {
		fs, err := scanFactState(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan fact")
		}
		out = append(out, fs)
	}
	return out, rows.Err()
}

// UpdateFactState runs fn on the fact's current state and persists the result
// in one transaction. It is the only write path for scheduling fields.
func (s *SQLiteStore) UpdateFactState(ctx context.Context, factID string, fn StateUpdate) (srs.State, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return srs.State{}, errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	var (
		exists     bool
		ease       sql.NullFloat64
		reps       sql.NullInt64
		interval   sql.NullInt64
		nextReview sql.NullInt64
		lastReview sql.NullInt64
	)
	err = tx.QueryRowContext(ctx, `
		SELECT 1, st.ease_factor, st.repetitions, st.interval_days, st.next_review, st.last_review
		FROM facts f LEFT JOIN fact_states st ON st.fact_id = f.id
		WHERE f.id = ?
	`, factID).Scan(&exists, &ease, &reps, &interval, &nextReview, &lastReview)
	if err == sql.ErrNoRows {
		return srs.State{}, ErrNotFound
	}
	if err != nil {
		return srs.State{}, errors.Wrapf(err, "failed to load state of %s", factID)
	}

	current := srs.NewState()
	if ease.Valid {
		current = srs.State{
			EaseFactor:  ease.Float64,
			Repetitions: int(reps.Int64),
			Interval:    int(interval.Int64),
			NextReview:  fromUnix(nextReview),
			LastReview:  fromUnix(lastReview),
		}
	}

	next, err := fn(current)
	if err != nil {
		return current, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO fact_states (fact_id, ease_factor, repetitions, interval_days, next_review, last_review)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(fact_id) DO UPDATE SET
			ease_factor = excluded.ease_factor,
			repetitions = excluded.repetitions,
			interval_days = excluded.interval_days,
			next_review = excluded.next_review,
			last_review = excluded.last_review
	`, factID, next.EaseFactor, next.Repetitions, next.Interval, nullUnix(next.NextReview), nullUnix(next.LastReview))
	if err != nil {
		return current, errors.Wrapf(err, "failed to save state of %s", factID)
	}

	if err := tx.Commit(); err != nil {
		return current, errors.Wrap(err, "failed to commit review")
	}
	return next, nil
}

// UpdateFactTags replaces the fact's tags and returns the normalized set.
func (s *SQLiteStore) UpdateFactTags(ctx context.Context, factID string, tags []string) ([]string, error) {
	tags = deck.NormalizeTags(tags)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM facts WHERE id = ?)", factID).Scan(&exists); err != nil {
		return nil, errors.Wrap(err, "failed to check fact")
	}
	if !exists {
		return nil, ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM fact_tags WHERE fact_id = ?", factID); err != nil {
		return nil, errors.Wrap(err, "failed to clear fact tags")
	}
	for _, tag := range tags {
		if _, err := tx.ExecContext(ctx, "INSERT INTO fact_tags (fact_id, tag) VALUES (?, ?)", factID, tag); err != nil {
			return nil, errors.Wrap(err, "failed to insert fact tag")
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit fact tags")
	}
	return tags, nil
}

// ListTags returns the distinct tags used in a deck, or in every deck when
// deckName is empty.
func (s *SQLiteStore) ListTags(ctx context.Context, deckName string) ([]string, error) {
	query := "SELECT DISTINCT t.tag FROM fact_tags t"
	var args []any
	if deckName != "" {
		query += " JOIN facts f ON f.id = t.fact_id WHERE f.deck_name = ?"
		args = append(args, deckName)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, errors.Wrap(err, "failed to scan tag")
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}
	sort.Strings(tags)
	return tags, nil
}
