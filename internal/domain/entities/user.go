package entities

import "time"

// Plan is the subscription tier of a user.
type Plan string

const (
	PlanFree  Plan = "FREE"
	PlanTrial Plan = "TRIAL"
	PlanPro   Plan = "PRO"
)

func (p Plan) IsFree() bool {
	return p == PlanFree
}

type User struct {
	ID                  uint
	Username            string
	Name                string
	Email               string
	Avatar              string
	Plan                Plan
	CompletedOnboarding bool
	StartTime           int // minutes from midnight
	EndTime             int
	BufferTime          int
	DiscordID           string
	CreatedAt           time.Time
}
