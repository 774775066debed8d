package conversation

import (
	"fmt"

	"tarjimon/internal/domain"
)

// FormatOutcome renders a translation outcome for the user.
// Failures never expose the underlying error.
func FormatOutcome(outcome domain.TranslationOutcome, catalog domain.Catalog) string {
	switch outcome.Kind {
	case domain.OutcomeTranslated:
		return fmt.Sprintf(msgResult,
			catalog.DisplayName(outcome.SourceCode),
			outcome.Original,
			outcome.Target.Label,
			outcome.Translated,
		)
	case domain.OutcomeAlreadyInTarget:
		return fmt.Sprintf(msgAlreadyInTarget, outcome.Target.Label)
	default:
		return MsgTranslateFailed
	}
}
