package conversation

import (
	"errors"
	"testing"

	"tarjimon/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func awaitingLanguage(text string) domain.Session {
	return domain.NewSession(7).AwaitLanguage(text)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		expectedCmd string
		expectedOK  bool
	}{
		{name: "plain command", text: "/start", expectedCmd: "/start", expectedOK: true},
		{name: "command with bot name", text: "/help@tarjimon_bot", expectedCmd: "/help", expectedOK: true},
		{name: "command with payload", text: "/start ref42", expectedCmd: "/start", expectedOK: true},
		{name: "upper case command", text: "/START", expectedCmd: "/start", expectedOK: true},
		{name: "leading spaces", text: "  /foo", expectedCmd: "/foo", expectedOK: true},
		{name: "bare slash", text: "/", expectedCmd: "/", expectedOK: true},
		{name: "plain text", text: "Salom dunyo", expectedOK: false},
		{name: "slash inside text", text: "a/b", expectedOK: false},
		{name: "empty", text: "", expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := ParseCommand(tt.text)

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedCmd, cmd)
		})
	}
}

func TestTransition_StartResetsFromAnyState(t *testing.T) {
	catalog := domain.DefaultCatalog()

	for _, session := range []domain.Session{
		domain.NewSession(7),
		awaitingLanguage("Salom"),
	} {
		t.Run(string(session.State), func(t *testing.T) {
			step := Transition(session, "/start", catalog)

			assert.Equal(t, domain.StateAwaitingText, step.Next.State)
			assert.Empty(t, step.Next.PendingText)
			assert.Nil(t, step.Translate)
			require.Len(t, step.Replies, 1)
			assert.Equal(t, MsgGreeting, step.Replies[0].Text)
			assert.True(t, step.Replies[0].RemoveKeyboard)
		})
	}
}

func TestTransition_HelpKeepsState(t *testing.T) {
	catalog := domain.DefaultCatalog()

	for _, session := range []domain.Session{
		domain.NewSession(7),
		awaitingLanguage("Salom"),
	} {
		t.Run(string(session.State), func(t *testing.T) {
			step := Transition(session, "/help", catalog)

			assert.Equal(t, session, step.Next)
			assert.Nil(t, step.Translate)
			require.Len(t, step.Replies, 1)
			assert.Equal(t, MsgHelp, step.Replies[0].Text)
		})
	}
}

func TestTransition_AwaitingText(t *testing.T) {
	catalog := domain.DefaultCatalog()

	tests := []struct {
		name            string
		text            string
		expectedState   domain.SessionState
		expectedPending string
		expectedReply   string
		expectKeyboard  bool
	}{
		{
			name:          "unknown command",
			text:          "/translate",
			expectedState: domain.StateAwaitingText,
			expectedReply: MsgNotCommand,
		},
		{
			name:            "plain text",
			text:            "Salom dunyo",
			expectedState:   domain.StateAwaitingLanguage,
			expectedPending: "Salom dunyo",
			expectedReply:   MsgChooseLanguage,
			expectKeyboard:  true,
		},
		{
			name:            "whitespace only text is accepted",
			text:            "   ",
			expectedState:   domain.StateAwaitingLanguage,
			expectedPending: "   ",
			expectedReply:   MsgChooseLanguage,
			expectKeyboard:  true,
		},
		{
			name:            "catalog label is just text here",
			text:            "🇸🇦 Arabcha",
			expectedState:   domain.StateAwaitingLanguage,
			expectedPending: "🇸🇦 Arabcha",
			expectedReply:   MsgChooseLanguage,
			expectKeyboard:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := Transition(domain.NewSession(7), tt.text, catalog)

			assert.Equal(t, tt.expectedState, step.Next.State)
			assert.Equal(t, tt.expectedPending, step.Next.PendingText)
			assert.Nil(t, step.Translate)
			require.Len(t, step.Replies, 1)
			assert.Equal(t, tt.expectedReply, step.Replies[0].Text)
			if tt.expectKeyboard {
				require.NotNil(t, step.Replies[0].Keyboard)
				assert.Equal(t, catalog.Labels(), step.Replies[0].Keyboard.Buttons)
			} else {
				assert.Nil(t, step.Replies[0].Keyboard)
			}
		})
	}
}

func TestTransition_AwaitingLanguage_Unrecognized(t *testing.T) {
	catalog := domain.DefaultCatalog()

	for _, text := range []string{"Arabcha", "English", "/foo", ""} {
		t.Run(text, func(t *testing.T) {
			session := awaitingLanguage("Salom dunyo")

			step := Transition(session, text, catalog)

			assert.Equal(t, session, step.Next)
			assert.Nil(t, step.Translate)
			require.Len(t, step.Replies, 1)
			assert.Equal(t, MsgChooseOffered, step.Replies[0].Text)
			require.NotNil(t, step.Replies[0].Keyboard)
			assert.Len(t, step.Replies[0].Keyboard.Buttons, 3)
		})
	}
}

func TestTransition_AwaitingLanguage_Selected(t *testing.T) {
	catalog := domain.DefaultCatalog()

	step := Transition(awaitingLanguage("Salom dunyo"), "🇸🇦 Arabcha", catalog)

	assert.Equal(t, domain.StateAwaitingText, step.Next.State)
	assert.Empty(t, step.Next.PendingText)
	assert.Empty(t, step.Replies)
	require.NotNil(t, step.Translate)
	assert.Equal(t, "Salom dunyo", step.Translate.Text)
	assert.Equal(t, domain.Language{Label: "🇸🇦 Arabcha", Code: "ar"}, step.Translate.Target)
}

func TestFinish(t *testing.T) {
	catalog := domain.DefaultCatalog()
	arabic, _ := catalog.ByCode("ar")
	uzbek, _ := catalog.ByCode("uz")

	tests := []struct {
		name     string
		outcome  domain.TranslationOutcome
		contains []string
		exact    string
	}{
		{
			name: "translated",
			outcome: domain.TranslationOutcome{
				Kind:       domain.OutcomeTranslated,
				SourceCode: "uz",
				Target:     arabic,
				Original:   "Salom dunyo",
				Translated: "مرحبا بالعالم",
			},
			exact: "📝 Original matn (🇺🇿 O'zbekcha):\nSalom dunyo\n\n🔄 Tarjima (🇸🇦 Arabcha):\nمرحبا بالعالم",
		},
		{
			name: "translated from unknown language",
			outcome: domain.TranslationOutcome{
				Kind:       domain.OutcomeTranslated,
				SourceCode: "en",
				Target:     arabic,
				Original:   "Hello",
				Translated: "مرحبا",
			},
			contains: []string{"Aniqlanmagan til (en)", "Hello", "🇸🇦 Arabcha", "مرحبا"},
		},
		{
			name: "already in target",
			outcome: domain.TranslationOutcome{
				Kind:       domain.OutcomeAlreadyInTarget,
				SourceCode: "uz",
				Target:     uzbek,
				Original:   "Salom",
			},
			exact: "Kiritilgan matn allaqachon 🇺🇿 O'zbekcha tilida.",
		},
		{
			name: "failed",
			outcome: domain.TranslationOutcome{
				Kind:    domain.OutcomeFailed,
				Target:  arabic,
				Failure: &domain.TranslationFailure{Stage: domain.StageTranslate, Err: errors.New("quota exceeded")},
			},
			exact: MsgTranslateFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replies := Finish(tt.outcome, catalog)

			require.Len(t, replies, 2)
			if tt.exact != "" {
				assert.Equal(t, tt.exact, replies[0].Text)
			}
			for _, s := range tt.contains {
				assert.Contains(t, replies[0].Text, s)
			}
			assert.NotContains(t, replies[0].Text, "quota exceeded")
			assert.Equal(t, MsgEnterNewText, replies[1].Text)
			assert.True(t, replies[1].RemoveKeyboard)
		})
	}
}
