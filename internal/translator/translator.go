// Package translator provides the language detection and translation backends.
package translator

import (
	"context"
	"strings"
)

// Translator is the translation gateway consumed by the bot
type Translator interface {
	// Detect returns the ISO 639-1 code of the text's language.
	Detect(ctx context.Context, text string) (string, error)

	// Translate translates text into targetLang, detecting the source itself.
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// NormalizeCode converts backend codes like "uz-Latn" or "AR" to "uz" / "ar"
func NormalizeCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if idx := strings.IndexAny(code, "-_"); idx >= 0 {
		code = code[:idx]
	}
	return code
}
