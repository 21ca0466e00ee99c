package output

import (
	"context"

	"calpages/internal/domain/entities"
)

type EventTypeRepository interface {
	// FindPersonalByUserID returns the event types linked to the user through
	// the users relation that belong to no team.
	FindPersonalByUserID(ctx context.Context, userID uint) ([]entities.EventType, error)
	// FindByOwnerID returns the event types whose owner column is the user.
	FindByOwnerID(ctx context.Context, userID uint) ([]entities.EventType, error)
}
