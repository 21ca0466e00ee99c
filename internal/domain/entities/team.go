package entities

type MembershipRole string

const (
	RoleMember MembershipRole = "MEMBER"
	RoleOwner  MembershipRole = "OWNER"
)

type Team struct {
	ID   uint
	Name string
	Slug string
	Logo string
}

// Membership is an accepted team membership of a user, loaded together with
// the team's member count and event types.
type Membership struct {
	Team        Team
	Role        MembershipRole
	MemberCount int
	EventTypes  []EventType
}

func (m *Membership) IsOwner() bool {
	return m.Role == RoleOwner
}
