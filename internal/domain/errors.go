package domain

import "errors"

// Domain errors.
var (
	ErrUnauthenticated        = errors.New("session missing or invalid")
	ErrUserNotFound           = errors.New("user not found")
	ErrOnboardingRequired     = errors.New("onboarding not completed")
	ErrDiscordAccountUnlinked = errors.New("discord account is not linked to a user")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrUnauthenticated, "unauthenticated"},
	{ErrUserNotFound, "user_not_found"},
	{ErrOnboardingRequired, "onboarding_required"},
	{ErrDiscordAccountUnlinked, "discord_unlinked"},
}

// Code returns the stable code of a domain error, or "" when err does not
// wrap one.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
