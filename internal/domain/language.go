package domain

import (
	"fmt"
	"strings"
)

// Language is a selectable target language
type Language struct {
	Label string
	Code  string
}

// Catalog is an ordered, immutable set of languages.
// Order determines the order of keyboard buttons.
type Catalog struct {
	languages []Language
}

// NewCatalog validates and builds a catalog
func NewCatalog(languages ...Language) (Catalog, error) {
	if len(languages) == 0 {
		return Catalog{}, fmt.Errorf("catalog must contain at least one language")
	}

	labels := make(map[string]struct{}, len(languages))
	codes := make(map[string]struct{}, len(languages))
	out := make([]Language, 0, len(languages))

	for _, l := range languages {
		if l.Label == "" || l.Code == "" {
			return Catalog{}, fmt.Errorf("language %q (%q) has empty label or code", l.Label, l.Code)
		}
		code := strings.ToLower(l.Code)
		if _, dup := labels[l.Label]; dup {
			return Catalog{}, fmt.Errorf("duplicate language label %q", l.Label)
		}
		if _, dup := codes[code]; dup {
			return Catalog{}, fmt.Errorf("duplicate language code %q", code)
		}
		labels[l.Label] = struct{}{}
		codes[code] = struct{}{}
		out = append(out, Language{Label: l.Label, Code: code})
	}

	return Catalog{languages: out}, nil
}

// DefaultCatalog returns the Uzbek, Arabic and Turkish catalog
func DefaultCatalog() Catalog {
	return Catalog{languages: []Language{
		{Label: "🇺🇿 O'zbekcha", Code: "uz"},
		{Label: "🇸🇦 Arabcha", Code: "ar"},
		{Label: "🇹🇷 Turkcha", Code: "tr"},
	}}
}

// Languages returns a copy of the catalog entries
func (c Catalog) Languages() []Language {
	out := make([]Language, len(c.languages))
	copy(out, c.languages)
	return out
}

// Labels returns display labels in catalog order
func (c Catalog) Labels() []string {
	labels := make([]string, 0, len(c.languages))
	for _, l := range c.languages {
		labels = append(labels, l.Label)
	}
	return labels
}

// ByLabel finds a language by its display label
func (c Catalog) ByLabel(label string) (Language, bool) {
	label = strings.TrimSpace(label)
	for _, l := range c.languages {
		if l.Label == label {
			return l, true
		}
	}
	return Language{}, false
}

// ByCode finds a language by its code (case-insensitive)
func (c Catalog) ByCode(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range c.languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// DisplayName returns the label for code, or an "unrecognized language"
// annotation with the raw code when the catalog does not know it
func (c Catalog) DisplayName(code string) string {
	if l, ok := c.ByCode(code); ok {
		return l.Label
	}
	return fmt.Sprintf("Aniqlanmagan til (%s)", code)
}
