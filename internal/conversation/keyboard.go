package conversation

import "tarjimon/internal/domain"

// LanguageKeyboard builds the language selection keyboard, one button per
// catalog entry in catalog order
func LanguageKeyboard(catalog domain.Catalog) *domain.Keyboard {
	return &domain.Keyboard{Buttons: catalog.Labels()}
}
