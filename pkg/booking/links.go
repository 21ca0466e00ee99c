// Package booking builds the public links of profiles and event types.
package booking

import (
	"strconv"
	"strings"
)

// ProfileURL is the public booking page of a profile, e.g.
// https://cal.example.com/team/sales.
func ProfileURL(baseURL, profileSlug string) string {
	return strings.TrimRight(baseURL, "/") + "/" + profileSlug
}

// EventTypeURL is the public booking page of one event type.
func EventTypeURL(baseURL, profileSlug, eventTypeSlug string) string {
	return ProfileURL(baseURL, profileSlug) + "/" + eventTypeSlug
}

// DisplayURL drops the https:// prefix for link labels.
func DisplayURL(u string) string {
	return strings.TrimPrefix(u, "https://")
}

// EditPath is the in-app edit page of an event type.
func EditPath(eventTypeID uint) string {
	return "/event-types/" + strconv.FormatUint(uint64(eventTypeID), 10)
}
