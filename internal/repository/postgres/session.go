package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tarjimon/internal/domain"
	"tarjimon/internal/repository"

	"github.com/jmoiron/sqlx"
)

// SessionRepo implements repository.SessionRepository
type SessionRepo struct {
	db *sqlx.DB
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: sqlx.NewDb(db, "postgres")}
}

// Get returns the stored session or a fresh one if the user has none
func (r *SessionRepo) Get(ctx context.Context, userID int64) (domain.Session, error) {
	var s domain.Session
	query := `SELECT user_id, state, pending_text, updated_at FROM sessions WHERE user_id = $1`
	err := r.db.GetContext(ctx, &s, query, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewSession(userID), nil
	}
	if err != nil {
		return domain.Session{}, err
	}

	if !s.State.Valid() {
		return domain.Session{}, fmt.Errorf("session %d has unknown state %q", userID, s.State)
	}

	return s, nil
}

// Save upserts the session
func (r *SessionRepo) Save(ctx context.Context, session domain.Session) error {
	query := `
		INSERT INTO sessions (user_id, state, pending_text, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET state = EXCLUDED.state, pending_text = EXCLUDED.pending_text, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, session.UserID, string(session.State), session.PendingText, session.UpdatedAt)
	return err
}

// DeleteIdle deletes sessions not updated since before
func (r *SessionRepo) DeleteIdle(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM sessions WHERE updated_at < $1`
	res, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

var _ repository.SessionRepository = (*SessionRepo)(nil)
