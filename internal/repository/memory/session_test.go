package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"tarjimon/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSessionRepo_GetDefault(t *testing.T) {
	repo := NewSessionRepo()

	s, err := repo.Get(context.Background(), 123)

	assert.NoError(t, err)
	assert.Equal(t, domain.NewSession(123), s)
	assert.Equal(t, 0, repo.Len())
}

func TestSessionRepo_SaveAndGet(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()

	saved := domain.NewSession(123).AwaitLanguage("Salom")
	assert.NoError(t, repo.Save(ctx, saved))

	s, err := repo.Get(ctx, 123)
	assert.NoError(t, err)
	assert.Equal(t, saved, s)

	// Returned sessions are copies
	s.PendingText = "changed"
	again, _ := repo.Get(ctx, 123)
	assert.Equal(t, "Salom", again.PendingText)
}

func TestSessionRepo_DeleteIdle(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()
	now := time.Date(2024, 12, 12, 12, 0, 0, 0, time.UTC)

	old := domain.NewSession(1)
	old.UpdatedAt = now.Add(-48 * time.Hour)
	fresh := domain.NewSession(2)
	fresh.UpdatedAt = now.Add(-time.Minute)

	assert.NoError(t, repo.Save(ctx, old))
	assert.NoError(t, repo.Save(ctx, fresh))

	n, err := repo.DeleteIdle(ctx, now.Add(-24*time.Hour))

	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 1, repo.Len())

	s, _ := repo.Get(ctx, 2)
	assert.Equal(t, fresh.UpdatedAt, s.UpdatedAt)
}

func TestSessionRepo_ConcurrentUsers(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_ = repo.Save(ctx, domain.NewSession(id).AwaitLanguage("text"))
			_, _ = repo.Get(ctx, id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, repo.Len())
}
