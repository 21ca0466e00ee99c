package i18n

import "testing"

func TestTranslate(t *testing.T) {
	tr := NewTranslator("en", nil)

	tests := []struct {
		locale, key string
		data        map[string]any
		want        string
	}{
		{"en", "event_type.one_on_one", nil, "One-on-One"},
		{"fr", "event_type.collective", nil, "Collectif"},
		{"en", "event_type.length", map[string]any{"Minutes": 30}, "30 mins"},
		{"de", "event_type.round_robin", nil, "Round Robin"},
		{"", "action.edit", nil, "Edit"},
		{"en", "discord.members", map[string]any{"Count": 1}, "1 member"},
		{"fr", "discord.members", map[string]any{"Count": 4}, "4 membres"},
		{"en", "missing.key", nil, "missing.key"},
		{"en", "", nil, ""},
	}
	for _, tt := range tests {
		if got := tr.T(tt.locale, tt.key, tt.data); got != tt.want {
			t.Errorf("T(%q, %q) = %q, want %q", tt.locale, tt.key, got, tt.want)
		}
	}
}

func TestResolveLocale(t *testing.T) {
	tr := NewTranslator("en", nil)

	tests := map[string]string{
		"":                        "en",
		"fr-CA,fr;q=0.9,en;q=0.8": "fr",
		"de-DE,de;q=0.9":          "en",
		"en-GB":                   "en",
		"es;q=0.9, fr;q=0.5":      "fr",
		"garbage;;q=abc":          "en",
	}
	for header, want := range tests {
		if got := tr.ResolveLocale(header); got != want {
			t.Errorf("ResolveLocale(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestDefaultLocaleFallback(t *testing.T) {
	tr := NewTranslator("fr", nil)
	if got := tr.ResolveLocale("ja"); got != "fr" {
		t.Fatalf("expected default fr, got %q", got)
	}
	if got := tr.T("ja", "action.delete", nil); got != "Supprimer" {
		t.Fatalf("expected French fallback, got %q", got)
	}
}
