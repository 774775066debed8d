package testutil

import (
	"errors"
	"sync"

	tele "gopkg.in/telebot.v3"
)

// SentMessage is one call to FakeContext.Send or FakeContext.Reply
type SentMessage struct {
	What   interface{}
	Opts   []interface{}
	Quoted bool
}

// FakeContext is a tele.Context for handler and middleware tests.
// Only Sender, Text, Send and Reply are implemented; other methods panic.
type FakeContext struct {
	tele.Context

	User        *tele.User
	MessageText string
	SendErr     error

	mu   sync.Mutex
	sent []SentMessage
}

// NewFakeContext creates a context for a text message from userID
func NewFakeContext(userID int64, text string) *FakeContext {
	return &FakeContext{
		User:        &tele.User{ID: userID, Username: "tester"},
		MessageText: text,
	}
}

func (f *FakeContext) Sender() *tele.User {
	return f.User
}

func (f *FakeContext) Text() string {
	return f.MessageText
}

func (f *FakeContext) Send(what interface{}, opts ...interface{}) error {
	return f.record(SentMessage{What: what, Opts: opts})
}

func (f *FakeContext) Reply(what interface{}, opts ...interface{}) error {
	return f.record(SentMessage{What: what, Opts: opts, Quoted: true})
}

func (f *FakeContext) record(msg SentMessage) error {
	if f.SendErr != nil {
		return f.SendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

// Sent returns a copy of all sent messages
func (f *FakeContext) Sent() []SentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]SentMessage, len(f.sent))
	copy(out, f.sent)
	return out
}

// ErrSendFailed is a canned transport error
var ErrSendFailed = errors.New("telegram: send failed")
