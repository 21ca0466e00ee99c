// Package view turns an event types page into locale-aware display data
// shared by the web and Discord adapters.
package view

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"calpages/internal/domain/entities"
	"calpages/internal/ports/output"
	"calpages/pkg/booking"
)

type Options struct {
	Locale     string
	PublicURL  string
	UpgradeURL string
	// EventPage overrides the profile slug of the header link.
	EventPage string
}

type Labels struct {
	MoreOptions     string
	Edit            string
	Duplicate       string
	Delete          string
	ViewBookingPage string
	CopyLink        string
	Hidden          string
	Disabled        string
}

type Page struct {
	Locale string
	Title  string
	Labels Labels

	HeaderURL   string
	HeaderLabel string

	ShowNewButton     bool
	NewButtonDisabled bool
	NewButtonLabel    string
	NewOneOnOneLabel  string
	NewGroupLabel     string

	ShowUpgradeAlert bool
	UpgradeTitle     string
	UpgradeMessage   string
	UpgradeURL       string

	Groups []Group

	ShowEmptyState bool
	EmptyTitle     string
	EmptyBody      string
}

type Group struct {
	ShowHeading     bool
	Name            string
	Image           string
	Initials        string
	ShowBadge       bool
	MembershipCount int
	ProfileURL      string
	ProfileLabel    string
	ReadOnly        bool
	Cards           []Card
}

type Card struct {
	ID              uint
	Title           string
	LengthLabel     string
	SchedulingLabel string
	Hidden          bool
	Disabled        bool
	ReadOnly        bool
	ToggleLabel     string
	EditURL         string
	BookingURL      string
}

// Build projects page into display data for opts.Locale.
func Build(page *entities.EventTypesPage, tr output.Translator, opts Options) Page {
	t := func(key string) string { return tr.T(opts.Locale, key, nil) }

	p := Page{
		Locale: opts.Locale,
		Title:  t("page.title"),
		Labels: Labels{
			MoreOptions:     t("action.more_options"),
			Edit:            t("action.edit"),
			Duplicate:       t("action.duplicate"),
			Delete:          t("action.delete"),
			ViewBookingPage: t("action.view_booking_page"),
			CopyLink:        t("action.copy_link"),
			Hidden:          t("event_type.hidden"),
			Disabled:        t("event_type.disabled"),
		},
		NewButtonDisabled: !page.CanAddEvents,
		NewButtonLabel:    t("page.new_event_type"),
		NewOneOnOneLabel:  t("page.new_one_on_one"),
		NewGroupLabel:     t("page.new_group"),
		ShowUpgradeAlert:  page.User.Plan.IsFree() && !page.CanAddEvents,
		UpgradeTitle:      t("page.upgrade_title"),
		UpgradeMessage:    t("page.upgrade_message"),
		UpgradeURL:        opts.UpgradeURL,
		ShowEmptyState:    len(page.Groups) == 0,
		EmptyTitle:        t("page.empty_title"),
		EmptyBody:         t("page.empty_body"),
	}

	headerSlug := opts.EventPage
	if headerSlug == "" && len(page.Profiles) > 0 {
		headerSlug = page.Profiles[0].Slug
	}
	p.HeaderURL = booking.ProfileURL(opts.PublicURL, headerSlug)
	p.HeaderLabel = p.HeaderURL + "/"

	// Creating team event types is not offered from this page.
	p.ShowNewButton = !hasTeamProfile(page.Profiles)

	onlyPersonal := len(page.Groups) == 1 && page.Groups[0].IsPersonal()
	p.Groups = make([]Group, len(page.Groups))
	for i, g := range page.Groups {
		p.Groups[i] = buildGroup(g, tr, opts, !onlyPersonal)
	}
	return p
}

func buildGroup(g entities.EventTypeGroup, tr output.Translator, opts Options, showHeading bool) Group {
	profileURL := booking.ProfileURL(opts.PublicURL, g.Profile.Slug)
	out := Group{
		ShowHeading:     showHeading,
		Name:            g.Profile.Name,
		Image:           g.Profile.Image,
		Initials:        initials(g.Profile.Name),
		ShowBadge:       g.Metadata.MembershipCount > 1,
		MembershipCount: g.Metadata.MembershipCount,
		ReadOnly:        g.Metadata.ReadOnly,
		Cards:           make([]Card, len(g.EventTypes)),
	}
	if g.Profile.Slug != "" {
		out.ProfileURL = profileURL
		out.ProfileLabel = booking.DisplayURL(profileURL)
	}
	for i, et := range g.EventTypes {
		toggle := "action.turn_off"
		if et.Hidden {
			toggle = "action.turn_on"
		}
		out.Cards[i] = Card{
			ID:              et.ID,
			Title:           et.Title,
			LengthLabel:     LengthLabel(tr, opts.Locale, et.Length),
			SchedulingLabel: SchedulingLabel(tr, opts.Locale, et.SchedulingType),
			Hidden:          et.Hidden,
			Disabled:        et.Disabled,
			ReadOnly:        g.Metadata.ReadOnly,
			ToggleLabel:     tr.T(opts.Locale, toggle, nil),
			EditURL:         booking.EditPath(et.ID),
			BookingURL:      booking.EventTypeURL(opts.PublicURL, g.Profile.Slug, et.Slug),
		}
	}
	return out
}

// LengthLabel renders a duration in minutes, e.g. "30 mins".
func LengthLabel(tr output.Translator, locale string, minutes int) string {
	return tr.T(locale, "event_type.length", map[string]any{"Minutes": minutes})
}

// SchedulingLabel names the scheduling mode; nil is one-on-one.
func SchedulingLabel(tr output.Translator, locale string, st *entities.SchedulingType) string {
	if st == nil {
		return tr.T(locale, "event_type.one_on_one", nil)
	}
	switch *st {
	case entities.SchedulingRoundRobin:
		return tr.T(locale, "event_type.round_robin", nil)
	case entities.SchedulingCollective:
		return tr.T(locale, "event_type.collective", nil)
	default:
		return ""
	}
}

func hasTeamProfile(profiles []entities.ProfileSummary) bool {
	for _, p := range profiles {
		if p.TeamID != nil {
			return true
		}
	}
	return false
}

func initials(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
