package repository

import (
	"context"
	"time"

	"tarjimon/internal/domain"
)

// SessionRepository defines session storage operations
type SessionRepository interface {
	// Get returns the user's session, or a fresh one if none is stored.
	Get(ctx context.Context, userID int64) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	// DeleteIdle removes sessions not updated since before.
	DeleteIdle(ctx context.Context, before time.Time) (int64, error)
}
