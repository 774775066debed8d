package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tarjimon/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encoded(t *testing.T, s domain.Session) string {
	t.Helper()
	data, err := json.Marshal(s)
	require.NoError(t, err)
	return string(data)
}

func TestSessionRepo_Get_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	repo := NewSessionRepo(db, time.Hour, "test:")

	stored := domain.NewSession(123).AwaitLanguage("Salom dunyo")
	stored.UpdatedAt = time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC)
	mock.ExpectGet("test:123").SetVal(encoded(t, stored))

	s, err := repo.Get(context.Background(), 123)

	assert.NoError(t, err)
	assert.Equal(t, stored, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_Get_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	repo := NewSessionRepo(db, time.Hour, "test:")

	mock.ExpectGet("test:456").RedisNil()

	s, err := repo.Get(context.Background(), 456)

	assert.NoError(t, err)
	assert.Equal(t, domain.NewSession(456), s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_Get_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(mock redismock.ClientMock)
	}{
		{
			name:  "redis error",
			setup: func(mock redismock.ClientMock) { mock.ExpectGet("test:1").SetErr(errors.New("connection refused")) },
		},
		{
			name:  "corrupt value",
			setup: func(mock redismock.ClientMock) { mock.ExpectGet("test:1").SetVal("{not json") },
		},
		{
			name: "unknown state",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("test:1").SetVal(`{"user_id":1,"state":"idle","pending_text":""}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			defer db.Close()

			repo := NewSessionRepo(db, time.Hour, "test:")
			tt.setup(mock)

			_, err := repo.Get(context.Background(), 1)

			assert.Error(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepo_Save(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	repo := NewSessionRepo(db, 24*time.Hour, "")

	s := domain.NewSession(123)
	s.UpdatedAt = time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC)

	mock.ExpectSet("tarjimon:session:123", encoded(t, s), 24*time.Hour).SetVal("OK")

	err := repo.Save(context.Background(), s)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_Save_NoTTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	repo := NewSessionRepo(db, -time.Second, "test:")

	s := domain.NewSession(1)
	mock.ExpectSet("test:1", encoded(t, s), 0).SetVal("OK")

	assert.NoError(t, repo.Save(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_DeleteIdle(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	repo := NewSessionRepo(db, time.Hour, "test:")

	n, err := repo.DeleteIdle(context.Background(), time.Now())

	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
