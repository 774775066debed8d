package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tarjimon/internal/conversation"
	"tarjimon/internal/domain"
	"tarjimon/internal/repository"

	"go.uber.org/zap"
)

// ConversationService drives the per-user dialog
type ConversationService struct {
	sessions    repository.SessionRepository
	translation *TranslationService
	catalog     domain.Catalog
	logger      *zap.Logger
	now         func() time.Time

	// Per-user locks serialize handling of one user's messages
	locksMux sync.Mutex
	locks    map[int64]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

// NewConversationService creates a new conversation service
func NewConversationService(
	sessions repository.SessionRepository,
	translation *TranslationService,
	catalog domain.Catalog,
	logger *zap.Logger,
) *ConversationService {
	return &ConversationService{
		sessions:    sessions,
		translation: translation,
		catalog:     catalog,
		logger:      logger,
		now:         time.Now,
		locks:       make(map[int64]*userLock),
	}
}

// Handle applies one inbound message to the user's session and returns the
// replies to send. An error means the session store failed; the session is
// left as it was.
func (s *ConversationService) Handle(ctx context.Context, userID int64, text string) ([]domain.Reply, error) {
	unlock := s.lock(userID)
	defer unlock()

	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	step := conversation.Transition(session, text, s.catalog)
	replies := step.Replies

	if step.Translate != nil {
		outcome := s.translation.Translate(ctx, userID, step.Translate.Text, step.Translate.Target)
		replies = append(replies, conversation.Finish(outcome, s.catalog)...)
	}

	next := step.Next
	next.UserID = userID
	next.UpdatedAt = s.now()
	if err := s.sessions.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	if session.State != next.State {
		s.logger.Debug("Session state changed",
			zap.Int64("user_id", userID),
			zap.String("from", string(session.State)),
			zap.String("to", string(next.State)),
		)
	}

	return replies, nil
}

// lock acquires the user's lock and returns its release function
func (s *ConversationService) lock(userID int64) func() {
	s.locksMux.Lock()
	l, exists := s.locks[userID]
	if !exists {
		l = &userLock{}
		s.locks[userID] = l
	}
	l.refs++
	s.locksMux.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		s.locksMux.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, userID)
		}
		s.locksMux.Unlock()
	}
}

// activeLocks returns the number of users with in-flight messages
func (s *ConversationService) activeLocks() int {
	s.locksMux.Lock()
	defer s.locksMux.Unlock()
	return len(s.locks)
}
