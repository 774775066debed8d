package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tarjimon/internal/domain"
	"tarjimon/internal/repository"

	goredis "github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "tarjimon:session:"

// SessionRepo stores sessions as JSON values.
// Idle eviction is delegated to key expiry.
type SessionRepo struct {
	client    goredis.Cmdable
	ttl       time.Duration
	keyPrefix string
}

// NewClient parses url and verifies the connection
func NewClient(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// NewSessionRepo creates a repository; ttl <= 0 keeps sessions forever
func NewSessionRepo(client goredis.Cmdable, ttl time.Duration, keyPrefix string) *SessionRepo {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	if ttl < 0 {
		ttl = 0
	}
	return &SessionRepo{
		client:    client,
		ttl:       ttl,
		keyPrefix: keyPrefix,
	}
}

func (r *SessionRepo) key(userID int64) string {
	return r.keyPrefix + strconv.FormatInt(userID, 10)
}

// Get returns the stored session or a fresh one
func (r *SessionRepo) Get(ctx context.Context, userID int64) (domain.Session, error) {
	val, err := r.client.Get(ctx, r.key(userID)).Result()
	if errors.Is(err, goredis.Nil) {
		return domain.NewSession(userID), nil
	}
	if err != nil {
		return domain.Session{}, err
	}

	var s domain.Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return domain.Session{}, fmt.Errorf("decode session %d: %w", userID, err)
	}
	if !s.State.Valid() {
		return domain.Session{}, fmt.Errorf("session %d has unknown state %q", userID, s.State)
	}

	return s, nil
}

// Save stores the session and refreshes its expiry
func (r *SessionRepo) Save(ctx context.Context, session domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %d: %w", session.UserID, err)
	}
	return r.client.Set(ctx, r.key(session.UserID), string(data), r.ttl).Err()
}

// DeleteIdle is a no-op: redis expires idle sessions by itself
func (r *SessionRepo) DeleteIdle(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

var _ repository.SessionRepository = (*SessionRepo)(nil)
