package domain

import "time"

// SessionState represents user's current position in the conversation
type SessionState string

const (
	StateAwaitingText     SessionState = "awaiting_text"
	StateAwaitingLanguage SessionState = "awaiting_language"
)

// Valid reports whether s is a known state
func (s SessionState) Valid() bool {
	return s == StateAwaitingText || s == StateAwaitingLanguage
}

// Session holds the conversation state of a single user
type Session struct {
	UserID      int64        `json:"user_id" db:"user_id"`
	State       SessionState `json:"state" db:"state"`
	PendingText string       `json:"pending_text" db:"pending_text"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// NewSession returns a fresh session waiting for text
func NewSession(userID int64) Session {
	return Session{UserID: userID, State: StateAwaitingText}
}

// AwaitText moves the session back to the initial state and drops pending text
func (s Session) AwaitText() Session {
	s.State = StateAwaitingText
	s.PendingText = ""
	return s
}

// AwaitLanguage stores text and waits for the target language choice
func (s Session) AwaitLanguage(text string) Session {
	s.State = StateAwaitingLanguage
	s.PendingText = text
	return s
}
