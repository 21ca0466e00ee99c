package entities

// Profile is the owner of a group: the user or one of its teams.
type Profile struct {
	Slug  string
	Name  string
	Image string
}

type GroupMetadata struct {
	MembershipCount int
	ReadOnly        bool
}

// EventTypeGroup pairs a profile with the event types it owns. TeamID is nil
// for the personal group.
type EventTypeGroup struct {
	TeamID     *uint
	Profile    Profile
	Metadata   GroupMetadata
	EventTypes []EventType
}

func (g *EventTypeGroup) IsPersonal() bool {
	return g.TeamID == nil
}

// ProfileSummary flattens a group's profile and metadata for the
// "new event type" dropdown.
type ProfileSummary struct {
	TeamID *uint
	Profile
	GroupMetadata
}

// EventTypesPage is everything the event types page needs.
type EventTypesPage struct {
	User         User
	Groups       []EventTypeGroup
	Profiles     []ProfileSummary
	CanAddEvents bool
}
