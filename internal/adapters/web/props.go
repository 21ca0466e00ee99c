package web

import (
	"time"

	"calpages/internal/domain/entities"
)

// pageProps is the JSON shape of the event types page.
type pageProps struct {
	EventTypes   []groupProps   `json:"eventTypes"`
	Profiles     []profileProps `json:"profiles"`
	User         userProps      `json:"user"`
	CanAddEvents bool           `json:"canAddEvents"`
	LocaleProp   string         `json:"localeProp"`
}

type groupProps struct {
	TeamID     *uint            `json:"teamId"`
	Profile    profileData      `json:"profile"`
	Metadata   metadataProps    `json:"metadata"`
	EventTypes []eventTypeProps `json:"eventTypes"`
}

type profileData struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type metadataProps struct {
	MembershipCount int  `json:"membershipCount"`
	ReadOnly        bool `json:"readOnly"`
}

type profileProps struct {
	TeamID *uint `json:"teamId"`
	profileData
	metadataProps
}

type eventTypeProps struct {
	ID             uint                `json:"id"`
	Title          string              `json:"title"`
	Slug           string              `json:"slug"`
	Description    *string             `json:"description"`
	Length         int                 `json:"length"`
	SchedulingType *string             `json:"schedulingType"`
	Price          int                 `json:"price"`
	Currency       string              `json:"currency"`
	Hidden         bool                `json:"hidden"`
	Users          []eventTypeUserProp `json:"users"`
	Disabled       bool                `json:"$disabled"`
}

type eventTypeUserProp struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type userProps struct {
	ID                  uint   `json:"id"`
	Username            string `json:"username"`
	Name                string `json:"name"`
	Avatar              string `json:"avatar"`
	Plan                string `json:"plan"`
	CompletedOnboarding bool   `json:"completedOnboarding"`
	StartTime           int    `json:"startTime"`
	EndTime             int    `json:"endTime"`
	BufferTime          int    `json:"bufferTime"`
	CreatedDate         string `json:"createdDate"`
}

func newPageProps(page *entities.EventTypesPage, locale string) pageProps {
	props := pageProps{
		EventTypes:   make([]groupProps, len(page.Groups)),
		Profiles:     make([]profileProps, len(page.Profiles)),
		User:         newUserProps(page.User),
		CanAddEvents: page.CanAddEvents,
		LocaleProp:   locale,
	}
	for i, g := range page.Groups {
		props.EventTypes[i] = groupProps{
			TeamID:     g.TeamID,
			Profile:    profileData(g.Profile),
			Metadata:   metadataProps(g.Metadata),
			EventTypes: newEventTypeProps(g.EventTypes),
		}
	}
	for i, p := range page.Profiles {
		props.Profiles[i] = profileProps{
			TeamID:        p.TeamID,
			profileData:   profileData(p.Profile),
			metadataProps: metadataProps(p.GroupMetadata),
		}
	}
	return props
}

func newEventTypeProps(types []entities.EventType) []eventTypeProps {
	out := make([]eventTypeProps, len(types))
	for i, et := range types {
		out[i] = eventTypeProps{
			ID:          et.ID,
			Title:       et.Title,
			Slug:        et.Slug,
			Description: et.Description,
			Length:      et.Length,
			Price:       et.Price,
			Currency:    et.Currency,
			Hidden:      et.Hidden,
			Users:       make([]eventTypeUserProp, len(et.Users)),
			Disabled:    et.Disabled,
		}
		if et.SchedulingType != nil {
			st := string(*et.SchedulingType)
			out[i].SchedulingType = &st
		}
		for j, u := range et.Users {
			out[i].Users[j] = eventTypeUserProp(u)
		}
	}
	return out
}

func newUserProps(u entities.User) userProps {
	return userProps{
		ID:                  u.ID,
		Username:            u.Username,
		Name:                u.Name,
		Avatar:              u.Avatar,
		Plan:                string(u.Plan),
		CompletedOnboarding: u.CompletedOnboarding,
		StartTime:           u.StartTime,
		EndTime:             u.EndTime,
		BufferTime:          u.BufferTime,
		CreatedDate:         u.CreatedAt.Format(time.RFC3339),
	}
}
