package entities

// SchedulingType is nil for one-on-one event types.
type SchedulingType string

const (
	SchedulingRoundRobin SchedulingType = "ROUND_ROBIN"
	SchedulingCollective SchedulingType = "COLLECTIVE"
)

// EventTypeUser is the trimmed user record attached to an event type.
type EventTypeUser struct {
	ID     uint
	Name   string
	Avatar string
}

// EventType is a bookable meeting template.
//
// Description, SchedulingType and Users are optional: nil means the source
// query did not provide them.
type EventType struct {
	ID             uint
	Title          string
	Slug           string
	Description    *string
	Length         int
	SchedulingType *SchedulingType
	Price          int
	Currency       string
	Hidden         bool
	Users          []EventTypeUser

	// Disabled is set by the plan gate, it is never persisted.
	Disabled bool
}

func (e *EventType) IsOneOnOne() bool {
	return e.SchedulingType == nil
}
