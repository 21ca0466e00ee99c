package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"calpages/internal/domain"
	"calpages/internal/domain/entities"
	"calpages/internal/infrastructure/database/sqlc_generated"
	"calpages/internal/ports/output"
)

var _ output.UserRepository = (*UserRepository)(nil)

// UserRepository implements output.UserRepository using sqlc + pgx.
type UserRepository struct {
	q          *sqlc_generated.Queries
	eventTypes *EventTypeRepository
}

func NewUserRepository(q *sqlc_generated.Queries, eventTypes *EventTypeRepository) *UserRepository {
	return &UserRepository{q: q, eventTypes: eventTypes}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	row, err := r.q.GetUserByID(ctx, int64(id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	u := userToDomain(row)
	return &u, nil
}

func (r *UserRepository) FindByDiscordID(ctx context.Context, discordID string) (*entities.User, error) {
	row, err := r.q.GetUserByDiscordID(ctx, stringToPgtypeText(discordID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrDiscordAccountUnlinked
	}
	if err != nil {
		return nil, fmt.Errorf("get user by discord id: %w", err)
	}
	u := userToDomain(row)
	return &u, nil
}

func (r *UserRepository) FindAcceptedMemberships(ctx context.Context, userID uint) ([]entities.Membership, error) {
	rows, err := r.q.GetAcceptedMembershipsByUserID(ctx, int64(userID))
	if err != nil {
		return nil, fmt.Errorf("get accepted memberships: %w", err)
	}
	out := make([]entities.Membership, len(rows))
	teamIDs := make([]uint, len(rows))
	for i := range rows {
		out[i] = membershipToDomain(rows[i])
		teamIDs[i] = out[i].Team.ID
	}
	byTeam, err := r.eventTypes.FindByTeamIDs(ctx, teamIDs)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].EventTypes = byTeam[out[i].Team.ID]
		if out[i].EventTypes == nil {
			out[i].EventTypes = []entities.EventType{}
		}
	}
	return out, nil
}
