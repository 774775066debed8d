package testutil

import (
	"context"
	"time"

	"tarjimon/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a mock for SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(ctx context.Context, userID int64) (domain.Session, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteIdle(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// MockTranslator is a mock for translator.Translator.
// Return values may be functions with the same arguments as the method.
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Detect(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	if fn, ok := args.Get(0).(func(context.Context, string) string); ok {
		return fn(ctx, text), args.Error(1)
	}
	return args.String(0), args.Error(1)
}

func (m *MockTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	args := m.Called(ctx, text, targetLang)
	if fn, ok := args.Get(0).(func(context.Context, string, string) string); ok {
		return fn(ctx, text, targetLang), args.Error(1)
	}
	return args.String(0), args.Error(1)
}
