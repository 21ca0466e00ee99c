package discord

import "calpages/internal/domain"

// ErrorMessageKey maps an error to the i18n key of its user-facing message.
func ErrorMessageKey(err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return "error." + code
	}
	return "error.generic"
}
