package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/factflip/backend/internal/domain/achievement"
	studysession "github.com/factflip/backend/internal/domain/study_session"
)

// ============================================================================
// Sessions
// ============================================================================

func sessionArgs(session *studysession.Session) ([]any, error) {
	tags, err := json.Marshal(session.Config.Tags)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode session tags")
	}

	var factLimit, timeLimit sql.NullInt64
	if session.Config.FactLimit != nil {
		factLimit = sql.NullInt64{Int64: int64(*session.Config.FactLimit), Valid: true}
	}
	if session.Config.TimeLimit != nil {
		timeLimit = sql.NullInt64{Int64: int64(session.Config.TimeLimit.Seconds()), Valid: true}
	}

	var endedAt sql.NullInt64
	if session.EndedAt != nil {
		endedAt = nullUnix(*session.EndedAt)
	}

	return []any{
		session.DeckName, string(session.Config.Mode), factLimit, timeLimit, string(tags),
		session.StartedAt.Unix(), endedAt,
		session.FactsStudied, session.Answered, session.CorrectAnswers,
		session.ID,
	}, nil
}

func (s *SQLiteStore) SaveSession(ctx context.Context, session *studysession.Session) error {
	args, err := sessionArgs(session)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO study_sessions (
			deck_name, mode, fact_limit, time_limit_seconds, tags,
			started_at, ended_at, facts_studied, answered, correct_answers, id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, args...)
	return errors.Wrapf(err, "failed to save session %s", session.ID)
}

func (s *SQLiteStore) UpdateSession(ctx context.Context, session *studysession.Session) error {
	args, err := sessionArgs(session)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE study_sessions SET
			deck_name = ?, mode = ?, fact_limit = ?, time_limit_seconds = ?, tags = ?,
			started_at = ?, ended_at = ?, facts_studied = ?, answered = ?, correct_answers = ?
		WHERE id = ?
	`, args...)
	if err != nil {
		return errors.Wrapf(err, "failed to update session %s", session.ID)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListSessions returns the most recent sessions first. A non-positive limit
// returns every session.
func (s *SQLiteStore) ListSessions(ctx context.Context, limit int) ([]*studysession.Session, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, deck_name, mode, fact_limit, time_limit_seconds, tags,
		       started_at, ended_at, facts_studied, answered, correct_answers
		FROM study_sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}
	defer rows.Close()

	sessions := []*studysession.Session{}
	for rows.Next() {
		var (
			session   studysession.Session
			mode      string
			factLimit sql.NullInt64
			timeLimit sql.NullInt64
			tags      string
			startedAt int64
			endedAt   sql.NullInt64
		)
		err := rows.Scan(
			&session.ID, &session.DeckName, &mode, &factLimit, &timeLimit, &tags,
			&startedAt, &endedAt, &session.FactsStudied, &session.Answered, &session.CorrectAnswers,
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan session")
		}

		session.Config.Mode = studysession.Mode(mode)
		if factLimit.Valid {
			n := int(factLimit.Int64)
			session.Config.FactLimit = &n
		}
		if timeLimit.Valid {
			d := time.Duration(timeLimit.Int64) * time.Second
			session.Config.TimeLimit = &d
		}
		if err := json.Unmarshal([]byte(tags), &session.Config.Tags); err != nil {
			return nil, errors.Wrapf(err, "failed to decode tags of session %s", session.ID)
		}
		session.StartedAt = time.Unix(startedAt, 0)
		if endedAt.Valid {
			t := fromUnix(endedAt)
			session.EndedAt = &t
		}

		sessions = append(sessions, &session)
	}
	return sessions, rows.Err()
}

// ============================================================================
// Progress & achievements
// ============================================================================

// GetProgress returns the stored progress, or zero progress if none was saved.
func (s *SQLiteStore) GetProgress(ctx context.Context) (*achievement.Progress, error) {
	var p achievement.Progress
	err := s.db.QueryRowContext(ctx, `
		SELECT facts_viewed, reviews, correct_streak, best_correct_streak,
		       decks_uploaded, decks_completed, sessions_completed,
		       current_streak, longest_streak, last_study_day, xp
		FROM progress WHERE id = 1
	`).Scan(
		&p.FactsViewed, &p.Reviews, &p.CorrectStreak, &p.BestCorrectStreak,
		&p.DecksUploaded, &p.DecksCompleted, &p.SessionsCompleted,
		&p.CurrentStreak, &p.LongestStreak, &p.LastStudyDay, &p.XP,
	)
	if err == sql.ErrNoRows {
		return &achievement.Progress{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load progress")
	}
	return &p, nil
}

func (s *SQLiteStore) SaveProgress(ctx context.Context, p *achievement.Progress) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO progress (
			id, facts_viewed, reviews, correct_streak, best_correct_streak,
			decks_uploaded, decks_completed, sessions_completed,
			current_streak, longest_streak, last_study_day, xp
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			facts_viewed = excluded.facts_viewed,
			reviews = excluded.reviews,
			correct_streak = excluded.correct_streak,
			best_correct_streak = excluded.best_correct_streak,
			decks_uploaded = excluded.decks_uploaded,
			decks_completed = excluded.decks_completed,
			sessions_completed = excluded.sessions_completed,
			current_streak = excluded.current_streak,
			longest_streak = excluded.longest_streak,
			last_study_day = excluded.last_study_day,
			xp = excluded.xp
	`,
		p.FactsViewed, p.Reviews, p.CorrectStreak, p.BestCorrectStreak,
		p.DecksUploaded, p.DecksCompleted, p.SessionsCompleted,
		p.CurrentStreak, p.LongestStreak, p.LastStudyDay, p.XP,
	)
	return errors.Wrap(err, "failed to save progress")
}

func (s *SQLiteStore) ListUserAchievements(ctx context.Context) ([]UnlockedAchievement, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT achievement_id, unlocked_at FROM user_achievements ORDER BY unlocked_at, achievement_id")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list achievements")
	}
	defer rows.Close()

	unlocked := []UnlockedAchievement{}
	for rows.Next() {
		var (
			a  UnlockedAchievement
			at int64
		)
		if err := rows.Scan(&a.ID, &at); err != nil {
			return nil, errors.Wrap(err, "failed to scan achievement")
		}
		a.UnlockedAt = time.Unix(at, 0)
		unlocked = append(unlocked, a)
	}
	return unlocked, rows.Err()
}

// UnlockAchievement records the achievement and reports whether it was newly
// unlocked.
func (s *SQLiteStore) UnlockAchievement(ctx context.Context, achievementID string, at time.Time) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO user_achievements (achievement_id, unlocked_at) VALUES (?, ?)",
		achievementID, at.Unix(),
	)
	if err != nil {
		return false, errors.Wrapf(err, "failed to unlock achievement %s", achievementID)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read affected rows")
	}
	return rowsAffected == 1, nil
}

// ============================================================================
// App state
// ============================================================================

func (s *SQLiteStore) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM app_state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read setting %s", key)
	}
	return value, nil
}

func (s *SQLiteStore) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return errors.Wrapf(err, "failed to write setting %s", key)
}
