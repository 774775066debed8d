package service

import (
	"context"
	"fmt"
	"time"

	"tarjimon/internal/metrics"
	"tarjimon/internal/repository"

	"go.uber.org/zap"
)

// SessionJanitor evicts sessions idle for longer than the configured TTL
type SessionJanitor struct {
	sessions repository.SessionRepository
	ttl      time.Duration
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewSessionJanitor creates a new janitor; ttl <= 0 disables eviction
func NewSessionJanitor(sessions repository.SessionRepository, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) *SessionJanitor {
	if m == nil {
		m = metrics.NewNop()
	}
	return &SessionJanitor{
		sessions: sessions,
		ttl:      ttl,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// CleanupIdle removes sessions not updated within the TTL
func (j *SessionJanitor) CleanupIdle(ctx context.Context) error {
	if j.ttl <= 0 {
		return nil
	}

	before := j.now().Add(-j.ttl)
	j.logger.Info("Starting cleanup of idle sessions", zap.Duration("ttl", j.ttl))

	n, err := j.sessions.DeleteIdle(ctx, before)
	if err != nil {
		return fmt.Errorf("delete idle sessions: %w", err)
	}

	j.metrics.AddEvicted(n)
	j.logger.Info("Cleanup completed successfully", zap.Int64("removed", n))
	return nil
}

// Run calls CleanupIdle once and then every interval until ctx is done
func (j *SessionJanitor) Run(ctx context.Context, interval time.Duration) {
	if j.ttl <= 0 {
		j.logger.Info("Idle session cleanup disabled")
		return
	}

	if err := j.CleanupIdle(ctx); err != nil {
		j.logger.Error("Failed to run initial cleanup", zap.Error(err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			if err := j.CleanupIdle(ctx); err != nil {
				j.logger.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}
	}
}
