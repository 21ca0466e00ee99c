package database

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"calpages/internal/domain"
	"calpages/internal/domain/entities"
	"calpages/internal/infrastructure/database/sqlc_generated"
)

var queryName = regexp.MustCompile(`-- name: (\w+)`)

// fakeDB answers sqlc queries by name with canned rows and records the
// queries it receives.
type fakeDB struct {
	results map[string][][]any
	queries []string
}

func (f *fakeDB) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("exec not supported")
}

func (f *fakeDB) Query(_ context.Context, sql string, _ ...interface{}) (pgx.Rows, error) {
	name := nameOf(sql)
	f.queries = append(f.queries, name)
	return &fakeRows{rows: f.results[name], pos: -1}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, _ ...interface{}) pgx.Row {
	name := nameOf(sql)
	f.queries = append(f.queries, name)
	rows := f.results[name]
	if len(rows) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{values: rows[0]}
}

func nameOf(sql string) string {
	if m := queryName.FindStringSubmatch(sql); m != nil {
		return m[1]
	}
	return sql
}

func scanInto(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(values), len(dest))
	}
	for i, v := range values {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.values, dest)
}

type fakeRows struct {
	rows [][]any
	pos  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error { return scanInto(r.rows[r.pos], dest) }

func (r *fakeRows) Values() ([]any, error) { return r.rows[r.pos], nil }

func eventTypeRow(id, teamID int64, title string) []any {
	return []any{
		id, title, fmt.Sprintf("type-%d", id), pgtype.Text{},
		int32(30), false, int32(0),
		pgtype.Int8{}, pgtype.Int8{Int64: teamID, Valid: true},
		pgtype.Text{String: "COLLECTIVE", Valid: true},
		int32(0), "usd",
	}
}

func membershipRow(role string, teamID int64, slug string, members int64) []any {
	return []any{role, teamID, "Team " + slug, slug, pgtype.Text{}, members}
}

func newTestRepos(db *fakeDB) *UserRepository {
	q := sqlc_generated.New(db)
	return NewUserRepository(q, NewEventTypeRepository(q))
}

func TestFindAcceptedMembershipsBatchesTeamQueries(t *testing.T) {
	db := &fakeDB{results: map[string][][]any{
		"GetAcceptedMembershipsByUserID": {
			membershipRow("OWNER", 10, "sales", 3),
			membershipRow("MEMBER", 20, "support", 5),
			membershipRow("MEMBER", 30, "empty", 2),
		},
		"GetEventTypesByTeamIDs": {
			eventTypeRow(101, 10, "Demo"),
			eventTypeRow(102, 10, "Follow-up"),
			eventTypeRow(201, 20, "Triage"),
		},
		"GetEventTypeUsers": {
			{int64(201), int64(7), "Bob", ""},
		},
	}}

	got, err := newTestRepos(db).FindAcceptedMemberships(context.Background(), 3)
	if err != nil {
		t.Fatalf("FindAcceptedMemberships() error = %v", err)
	}

	want := []string{"GetAcceptedMembershipsByUserID", "GetEventTypesByTeamIDs", "GetEventTypeUsers"}
	if !reflect.DeepEqual(db.queries, want) {
		t.Fatalf("queries = %v, want %v", db.queries, want)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 memberships, got %d", len(got))
	}
	if !got[0].IsOwner() || got[0].MemberCount != 3 || got[0].Team.Slug != "sales" {
		t.Fatalf("unexpected first membership: %+v", got[0])
	}

	titles := func(m entities.Membership) []string {
		out := make([]string, len(m.EventTypes))
		for i, et := range m.EventTypes {
			out[i] = et.Title
		}
		return out
	}
	if ts := titles(got[0]); !reflect.DeepEqual(ts, []string{"Demo", "Follow-up"}) {
		t.Fatalf("sales event types = %v", ts)
	}
	if ts := titles(got[1]); !reflect.DeepEqual(ts, []string{"Triage"}) {
		t.Fatalf("support event types = %v", ts)
	}
	if len(got[1].EventTypes[0].Users) != 1 || got[1].EventTypes[0].Users[0].Name != "Bob" {
		t.Fatalf("users not attached: %+v", got[1].EventTypes[0])
	}
	if got[2].EventTypes == nil || len(got[2].EventTypes) != 0 {
		t.Fatalf("team without event types should have an empty list: %#v", got[2].EventTypes)
	}
}

func TestFindAcceptedMembershipsNone(t *testing.T) {
	db := &fakeDB{}
	got, err := newTestRepos(db).FindAcceptedMemberships(context.Background(), 3)
	if err != nil {
		t.Fatalf("FindAcceptedMemberships() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no memberships, got %+v", got)
	}
	if want := []string{"GetAcceptedMembershipsByUserID"}; !reflect.DeepEqual(db.queries, want) {
		t.Fatalf("queries = %v, want %v", db.queries, want)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	_, err := newTestRepos(&fakeDB{}).FindByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	_, err = newTestRepos(&fakeDB{}).FindByDiscordID(context.Background(), "1234")
	if !errors.Is(err, domain.ErrDiscordAccountUnlinked) {
		t.Fatalf("expected ErrDiscordAccountUnlinked, got %v", err)
	}
}
