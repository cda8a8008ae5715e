package prefs

import "testing"

type fakeStore struct {
	values map[string]string
	writes int
}

func newFakeStore(values map[string]string) *fakeStore {
	if values == nil {
		values = map[string]string{}
	}
	return &fakeStore{values: values}
}

func (s *fakeStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *fakeStore) Set(key, value string) {
	s.values[key] = value
	s.writes++
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct{ in, want string }{
		{"en", "en"},
		{"en-US", "en"},
		{"EN", "en"},
		{"de_DE", "de"},
		{"es-419", "es"},
		{" en ", "en"},
		{"", ""},
		{"zz-XX", "zz"},
	}
	for _, tt := range tests {
		if got := NormalizeLanguage(tt.in); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveLanguage(t *testing.T) {
	t.Run("param beats stored and writes through", func(t *testing.T) {
		store := newFakeStore(map[string]string{LanguageKey: "en"})
		if got := ResolveLanguage("de", store); got != "de" {
			t.Fatalf("ResolveLanguage = %q, want de", got)
		}
		if store.values[LanguageKey] != "de" {
			t.Errorf("stored language = %q, want write-through to de", store.values[LanguageKey])
		}
	})

	t.Run("regional param is normalized before the check", func(t *testing.T) {
		store := newFakeStore(nil)
		if got := ResolveLanguage("en-US", store); got != "en" {
			t.Errorf("ResolveLanguage = %q, want en", got)
		}
	})

	t.Run("unsupported param falls back to stored", func(t *testing.T) {
		store := newFakeStore(map[string]string{LanguageKey: "en"})
		if got := ResolveLanguage("fr", store); got != "en" {
			t.Errorf("ResolveLanguage = %q, want stored en", got)
		}
		if store.writes != 0 {
			t.Errorf("unsupported param wrote to the store %d times", store.writes)
		}
	})

	t.Run("unsupported stored value falls back to default", func(t *testing.T) {
		store := newFakeStore(map[string]string{LanguageKey: "fr"})
		if got := ResolveLanguage("", store); got != "es" {
			t.Errorf("ResolveLanguage = %q, want es", got)
		}
	})

	t.Run("nil store yields default", func(t *testing.T) {
		if got := ResolveLanguage("", nil); got != "es" {
			t.Errorf("ResolveLanguage = %q, want es", got)
		}
	})
}

func TestResolveTheme(t *testing.T) {
	t.Run("stored wins over device signal", func(t *testing.T) {
		store := newFakeStore(map[string]string{ThemeKey: "light"})
		if got := ResolveTheme("dark", store); got != ThemeLight {
			t.Errorf("ResolveTheme = %q, want light", got)
		}
	})

	t.Run("dark device signal persisted on first visit", func(t *testing.T) {
		store := newFakeStore(nil)
		if got := ResolveTheme("dark", store); got != ThemeDark {
			t.Fatalf("ResolveTheme = %q, want dark", got)
		}
		if store.values[ThemeKey] != "dark" {
			t.Errorf("stored theme = %q, want dark", store.values[ThemeKey])
		}
	})

	t.Run("absent signal defaults to light", func(t *testing.T) {
		if got := ResolveTheme("", newFakeStore(nil)); got != ThemeLight {
			t.Errorf("ResolveTheme = %q, want light", got)
		}
	})

	t.Run("garbage stored value is ignored", func(t *testing.T) {
		store := newFakeStore(map[string]string{ThemeKey: "sepia"})
		if got := ResolveTheme("dark", store); got != ThemeDark {
			t.Errorf("ResolveTheme = %q, want dark from device signal", got)
		}
	})
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in    string
		want  Theme
		valid bool
	}{
		{"light", ThemeLight, true},
		{"DARK", ThemeDark, true},
		{" dark ", ThemeDark, true},
		{"sepia", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, valid := ParseTheme(tt.in)
		if got != tt.want || valid != tt.valid {
			t.Errorf("ParseTheme(%q) = %q, %v, want %q, %v", tt.in, got, valid, tt.want, tt.valid)
		}
	}
}
