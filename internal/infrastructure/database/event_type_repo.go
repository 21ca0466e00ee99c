package database

import (
	"context"
	"fmt"

	"calpages/internal/domain/entities"
	"calpages/internal/infrastructure/database/sqlc_generated"
	"calpages/internal/ports/output"
)

var _ output.EventTypeRepository = (*EventTypeRepository)(nil)

type EventTypeRepository struct {
	q *sqlc_generated.Queries
}

func NewEventTypeRepository(q *sqlc_generated.Queries) *EventTypeRepository {
	return &EventTypeRepository{q: q}
}

func (r *EventTypeRepository) FindPersonalByUserID(ctx context.Context, userID uint) ([]entities.EventType, error) {
	rows, err := r.q.GetPersonalEventTypesByUserID(ctx, int64(userID))
	if err != nil {
		return nil, fmt.Errorf("get personal event types: %w", err)
	}
	return r.withUsers(ctx, rows)
}

func (r *EventTypeRepository) FindByOwnerID(ctx context.Context, userID uint) ([]entities.EventType, error) {
	rows, err := r.q.GetEventTypesByOwnerID(ctx, idToPgtypeInt8(userID))
	if err != nil {
		return nil, fmt.Errorf("get event types by owner id: %w", err)
	}
	return r.withUsers(ctx, rows)
}

// FindByTeamIDs returns the event types of each team, keyed by team id, in
// one round trip for the types and one for their users.
func (r *EventTypeRepository) FindByTeamIDs(ctx context.Context, teamIDs []uint) (map[uint][]entities.EventType, error) {
	out := make(map[uint][]entities.EventType, len(teamIDs))
	if len(teamIDs) == 0 {
		return out, nil
	}
	ids := make([]int64, len(teamIDs))
	for i, id := range teamIDs {
		ids[i] = int64(id)
	}
	rows, err := r.q.GetEventTypesByTeamIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get event types by team ids: %w", err)
	}
	types, err := r.withUsers(ctx, rows)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		teamID := uint(row.TeamID.Int64)
		out[teamID] = append(out[teamID], types[i])
	}
	return out, nil
}

// withUsers maps rows to domain event types and attaches their users in a
// single query.
func (r *EventTypeRepository) withUsers(ctx context.Context, rows []sqlc_generated.EventType) ([]entities.EventType, error) {
	out := make([]entities.EventType, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	ids := make([]int64, len(rows))
	pos := make(map[int64]int, len(rows))
	for i := range rows {
		out[i] = eventTypeToDomain(rows[i])
		out[i].Users = []entities.EventTypeUser{}
		ids[i] = rows[i].ID
		pos[rows[i].ID] = i
	}
	users, err := r.q.GetEventTypeUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get event type users: %w", err)
	}
	for _, u := range users {
		i := pos[u.EventTypeID]
		out[i].Users = append(out[i].Users, entities.EventTypeUser{
			ID:     uint(u.ID),
			Name:   u.Name,
			Avatar: u.Avatar,
		})
	}
	return out, nil
}
