// Package conversation implements the translation dialog as a pure state machine.
package conversation

import (
	"strings"

	"tarjimon/internal/domain"
)

// Request asks the caller to run the translate procedure
type Request struct {
	Text   string
	Target domain.Language
}

// Step is the result of applying one inbound message to a session
type Step struct {
	Next      domain.Session
	Replies   []domain.Reply
	Translate *Request
}

// ParseCommand extracts a bot command from message text.
// "/Start@tarjimon_bot payload" yields "/start".
func ParseCommand(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", false
	}

	cmd := strings.Fields(text)[0]
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd), true
}

// Transition applies text to session. It never calls the gateway: when a
// language was chosen the returned step carries a Request and the caller
// completes it with Finish.
func Transition(session domain.Session, text string, catalog domain.Catalog) Step {
	cmd, isCommand := ParseCommand(text)

	switch {
	case isCommand && cmd == CommandStart:
		return Step{
			Next:    session.AwaitText(),
			Replies: []domain.Reply{{Text: MsgGreeting, RemoveKeyboard: true}},
		}
	case isCommand && cmd == CommandHelp:
		return Step{
			Next:    session,
			Replies: []domain.Reply{{Text: MsgHelp}},
		}
	}

	switch session.State {
	case domain.StateAwaitingLanguage:
		lang, ok := catalog.ByLabel(text)
		if !ok {
			return Step{
				Next:    session,
				Replies: []domain.Reply{{Text: MsgChooseOffered, Keyboard: LanguageKeyboard(catalog)}},
			}
		}
		return Step{
			Next:      session.AwaitText(),
			Translate: &Request{Text: session.PendingText, Target: lang},
		}

	default:
		if isCommand {
			return Step{
				Next:    session.AwaitText(),
				Replies: []domain.Reply{{Text: MsgNotCommand}},
			}
		}
		// Empty or whitespace-only text is accepted as is.
		return Step{
			Next:    session.AwaitLanguage(text),
			Replies: []domain.Reply{{Text: MsgChooseLanguage, Keyboard: LanguageKeyboard(catalog)}},
		}
	}
}

// Finish renders the replies that close a translate procedure
func Finish(outcome domain.TranslationOutcome, catalog domain.Catalog) []domain.Reply {
	return []domain.Reply{
		{Text: FormatOutcome(outcome, catalog)},
		{Text: MsgEnterNewText, RemoveKeyboard: true},
	}
}
