package input

import (
	"context"

	"calpages/internal/domain/entities"
)

type EventTypesUseCase interface {
	// ListEventTypes builds the event types page of userID.
	ListEventTypes(ctx context.Context, userID uint) (*entities.EventTypesPage, error)
	// ResolveDiscordUser maps a Discord account to the linked user id.
	ResolveDiscordUser(ctx context.Context, discordID string) (uint, error)
}
