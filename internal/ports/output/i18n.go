package output

// Translator renders user-facing strings for a locale.
type Translator interface {
	// T renders the message identified by key for the given locale.
	// data holds template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
}

// LocaleResolver picks a supported locale from an Accept-Language header.
type LocaleResolver interface {
	ResolveLocale(acceptLanguage string) string
}
