package output

import (
	"context"

	"calpages/internal/domain/entities"
)

type UserRepository interface {
	// FindByID returns domain.ErrUserNotFound when no user has this id.
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByDiscordID(ctx context.Context, discordID string) (*entities.User, error)
	// FindAcceptedMemberships returns the user's accepted memberships with
	// member counts and team event types, in store order.
	FindAcceptedMemberships(ctx context.Context, userID uint) ([]entities.Membership, error)
}
