// Package prefs resolves the effective language and theme for a page view
// from the request parameter, the durable preference store and the device
// signal, in that priority order.
package prefs

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/tdamianovich/portfolio/internal/content"
)

// Storage keys. Values are the literal enum codes ("en", "dark").
const (
	LanguageKey = "language"
	ThemeKey    = "theme"
)

// Theme is the color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Store is the durable per-client preference store. An unavailable store
// reads absent and ignores writes; resolution then falls through to the
// device signal and fallback paths without error.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// NormalizeLanguage reduces a language code to its lowercase primary subtag:
// "en-US" and "EN" both become "en". An unparseable code is reduced by hand.
func NormalizeLanguage(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	if tag, err := language.Parse(code); err == nil {
		base, confidence := tag.Base()
		if confidence != language.No {
			return strings.ToLower(base.String())
		}
	}
	if idx := strings.IndexAny(code, "-_"); idx > 0 {
		code = code[:idx]
	}
	return strings.ToLower(code)
}

// ResolveLanguage picks the effective language. A supported explicit
// parameter wins and is written through to the store; otherwise a supported
// stored value is adopted without rewriting; otherwise the fixed fallback.
func ResolveLanguage(param string, store Store) string {
	if normalized := NormalizeLanguage(param); content.IsSupported(normalized) {
		if store != nil {
			store.Set(LanguageKey, normalized)
		}
		return normalized
	}
	if store != nil {
		if stored, ok := store.Get(LanguageKey); ok && content.IsSupported(stored) {
			return stored
		}
	}
	return content.DefaultLanguage
}

// ResolveTheme picks the effective theme. A stored value wins; otherwise the
// device signal decides and that initial decision is persisted.
func ResolveTheme(deviceSignal string, store Store) Theme {
	if store != nil {
		if stored, ok := store.Get(ThemeKey); ok {
			if theme, valid := ParseTheme(stored); valid {
				return theme
			}
		}
	}
	theme := ThemeLight
	if strings.EqualFold(strings.TrimSpace(deviceSignal), "dark") {
		theme = ThemeDark
	}
	if store != nil {
		store.Set(ThemeKey, string(theme))
	}
	return theme
}

// ParseTheme validates a stored or submitted theme code.
func ParseTheme(value string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return "", false
}
