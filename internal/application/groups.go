package application

import "calpages/internal/domain/entities"

const teamSlugPrefix = "team/"

// BuildGroups returns the personal group followed by one group per
// membership, in membership order. Empty groups are kept.
func BuildGroups(user *entities.User, personal []entities.EventType, memberships []entities.Membership) []entities.EventTypeGroup {
	groups := make([]entities.EventTypeGroup, 0, len(memberships)+1)
	groups = append(groups, entities.EventTypeGroup{
		Profile: entities.Profile{
			Slug:  user.Username,
			Name:  user.Name,
			Image: user.Avatar,
		},
		Metadata: entities.GroupMetadata{
			MembershipCount: 1,
			ReadOnly:        false,
		},
		EventTypes: personal,
	})
	for _, m := range memberships {
		teamID := m.Team.ID
		groups = append(groups, entities.EventTypeGroup{
			TeamID: &teamID,
			Profile: entities.Profile{
				Slug:  teamSlugPrefix + m.Team.Slug,
				Name:  m.Team.Name,
				Image: m.Team.Logo,
			},
			Metadata: entities.GroupMetadata{
				MembershipCount: m.MemberCount,
				ReadOnly:        !m.IsOwner(),
			},
			EventTypes: m.EventTypes,
		})
	}
	return groups
}

// NonEmptyGroups drops the groups without event types.
func NonEmptyGroups(groups []entities.EventTypeGroup) []entities.EventTypeGroup {
	out := make([]entities.EventTypeGroup, 0, len(groups))
	for _, g := range groups {
		if len(g.EventTypes) > 0 {
			out = append(out, g)
		}
	}
	return out
}

func ProfileSummaries(groups []entities.EventTypeGroup) []entities.ProfileSummary {
	out := make([]entities.ProfileSummary, len(groups))
	for i, g := range groups {
		out[i] = entities.ProfileSummary{
			TeamID:        g.TeamID,
			Profile:       g.Profile,
			GroupMetadata: g.Metadata,
		}
	}
	return out
}
