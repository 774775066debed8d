package memory

import (
	"context"
	"sync"
	"time"

	"tarjimon/internal/domain"
	"tarjimon/internal/repository"
)

// SessionRepo keeps sessions in process memory
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[int64]domain.Session
}

// NewSessionRepo creates a new in-memory session repository
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[int64]domain.Session),
	}
}

// Get returns a copy of the stored session or a fresh one
func (r *SessionRepo) Get(ctx context.Context, userID int64) (domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.sessions[userID]; ok {
		return s, nil
	}
	return domain.NewSession(userID), nil
}

// Save stores the session
func (r *SessionRepo) Save(ctx context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.UserID] = session
	return nil
}

// DeleteIdle removes sessions last updated before the given time
func (r *SessionRepo) DeleteIdle(ctx context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, s := range r.sessions {
		if s.UpdatedAt.Before(before) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored sessions
func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

var _ repository.SessionRepository = (*SessionRepo)(nil)
