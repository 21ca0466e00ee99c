package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"calpages/internal/domain/entities"
	"calpages/internal/infrastructure/database/sqlc_generated"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// pgtypeTextToString returns "" for NULL.
func pgtypeTextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

func pgtypeTextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func stringToPgtypeText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// idToPgtypeInt8 is the value of a nullable foreign key column.
func idToPgtypeInt8(id uint) pgtype.Int8 {
	return pgtype.Int8{Int64: int64(id), Valid: true}
}

func userToDomain(u sqlc_generated.User) entities.User {
	return entities.User{
		ID:                  uint(u.ID),
		Username:            pgtypeTextToString(u.Username),
		Name:                u.Name,
		Email:               u.Email,
		Avatar:              u.Avatar,
		Plan:                entities.Plan(u.Plan),
		CompletedOnboarding: u.CompletedOnboarding,
		StartTime:           int(u.StartTime),
		EndTime:             int(u.EndTime),
		BufferTime:          int(u.BufferTime),
		DiscordID:           pgtypeTextToString(u.DiscordID),
		CreatedAt:           pgtypeTimestamptzToTime(u.CreatedAt),
	}
}

func eventTypeToDomain(e sqlc_generated.EventType) entities.EventType {
	et := entities.EventType{
		ID:          uint(e.ID),
		Title:       e.Title,
		Slug:        e.Slug,
		Description: pgtypeTextToPtr(e.Description),
		Length:      int(e.Length),
		Price:       int(e.Price),
		Currency:    e.Currency,
		Hidden:      e.Hidden,
	}
	if e.SchedulingType.Valid {
		st := entities.SchedulingType(e.SchedulingType.String)
		et.SchedulingType = &st
	}
	return et
}

func membershipToDomain(m sqlc_generated.GetAcceptedMembershipsByUserIDRow) entities.Membership {
	return entities.Membership{
		Team: entities.Team{
			ID:   uint(m.TeamID),
			Name: m.TeamName,
			Slug: m.TeamSlug,
			Logo: pgtypeTextToString(m.TeamLogo),
		},
		Role:        entities.MembershipRole(m.Role),
		MemberCount: int(m.MemberCount),
	}
}
