package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"calpages/internal/domain"
	"calpages/internal/domain/entities"
)

var cutoff = time.Date(2021, time.September, 1, 0, 0, 0, 0, time.UTC)

type fakeUserRepo struct {
	users       map[uint]*entities.User
	memberships []entities.Membership
	err         error
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByDiscordID(_ context.Context, discordID string) (*entities.User, error) {
	for _, u := range f.users {
		if u.DiscordID == discordID {
			return u, nil
		}
	}
	return nil, domain.ErrDiscordAccountUnlinked
}

func (f *fakeUserRepo) FindAcceptedMemberships(context.Context, uint) ([]entities.Membership, error) {
	return f.memberships, f.err
}

type fakeEventTypeRepo struct {
	personal, owned []entities.EventType
	err             error
}

func (f *fakeEventTypeRepo) FindPersonalByUserID(context.Context, uint) ([]entities.EventType, error) {
	return f.personal, f.err
}

func (f *fakeEventTypeRepo) FindByOwnerID(context.Context, uint) ([]entities.EventType, error) {
	return f.owned, nil
}

func newUser(plan entities.Plan) *entities.User {
	return &entities.User{
		ID:                  1,
		Username:            "alice",
		Name:                "Alice",
		Avatar:              "https://img/alice.png",
		Plan:                plan,
		CompletedOnboarding: true,
		DiscordID:           "42",
		CreatedAt:           cutoff.Add(24 * time.Hour),
	}
}

func newService(user *entities.User, users *fakeUserRepo, types *fakeEventTypeRepo) *EventTypesService {
	if users.users == nil {
		users.users = map[uint]*entities.User{user.ID: user}
	}
	return NewEventTypesService(users, types, cutoff, nil)
}

func TestListEventTypesFreePlanMerge(t *testing.T) {
	user := newUser(entities.PlanFree)
	types := &fakeEventTypeRepo{
		personal: []entities.EventType{
			{ID: 1, Title: "Intro", Slug: "intro"},
			{ID: 2, Title: "Follow-up", Slug: "follow-up"},
		},
		owned: []entities.EventType{
			{ID: 1, Title: "Intro (updated)", Slug: "intro"},
		},
	}
	s := newService(user, &fakeUserRepo{}, types)

	page, err := s.ListEventTypes(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListEventTypes() error = %v", err)
	}
	if len(page.Groups) != 1 {
		t.Fatalf("expected the personal group only, got %d", len(page.Groups))
	}
	got := page.Groups[0].EventTypes
	if len(got) != 2 {
		t.Fatalf("expected 2 merged event types, got %d", len(got))
	}
	if got[0].ID != 1 || got[0].Title != "Intro (updated)" || got[0].Disabled {
		t.Fatalf("unexpected first event type: %+v", got[0])
	}
	if got[1].ID != 2 || !got[1].Disabled {
		t.Fatalf("unexpected second event type: %+v", got[1])
	}
	if page.CanAddEvents {
		t.Fatal("free user with an event type cannot add more")
	}
}

func TestListEventTypesPaidPlanEmpty(t *testing.T) {
	user := newUser(entities.PlanPro)
	s := newService(user, &fakeUserRepo{}, &fakeEventTypeRepo{})

	page, err := s.ListEventTypes(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListEventTypes() error = %v", err)
	}
	if !page.CanAddEvents {
		t.Fatal("paid user can always add event types")
	}
	if len(page.Groups) != 0 {
		t.Fatalf("empty personal group must be filtered out, got %d groups", len(page.Groups))
	}
	if len(page.Profiles) != 1 || page.Profiles[0].Slug != "alice" || page.Profiles[0].TeamID != nil {
		t.Fatalf("personal profile must still be listed: %+v", page.Profiles)
	}
}

func TestListEventTypesFreePlanNoTypes(t *testing.T) {
	user := newUser(entities.PlanFree)
	s := newService(user, &fakeUserRepo{}, &fakeEventTypeRepo{})

	page, err := s.ListEventTypes(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListEventTypes() error = %v", err)
	}
	if !page.CanAddEvents {
		t.Fatal("free user without event types can add one")
	}
}

func TestListEventTypesPaidPlanNothingDisabled(t *testing.T) {
	user := newUser(entities.PlanPro)
	types := &fakeEventTypeRepo{personal: []entities.EventType{{ID: 1}, {ID: 2}, {ID: 3}}}
	s := newService(user, &fakeUserRepo{}, types)

	page, err := s.ListEventTypes(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListEventTypes() error = %v", err)
	}
	for _, et := range page.Groups[0].EventTypes {
		if et.Disabled {
			t.Fatalf("event type %d disabled on a paid plan", et.ID)
		}
	}
}

func TestListEventTypesTeams(t *testing.T) {
	user := newUser(entities.PlanFree)
	users := &fakeUserRepo{memberships: []entities.Membership{
		{
			Team:        entities.Team{ID: 10, Name: "Sales", Slug: "sales", Logo: "https://img/sales.png"},
			Role:        entities.RoleOwner,
			MemberCount: 3,
			EventTypes:  []entities.EventType{{ID: 100}, {ID: 101}},
		},
		{
			Team:        entities.Team{ID: 11, Name: "Empty", Slug: "empty"},
			Role:        entities.RoleMember,
			MemberCount: 2,
		},
		{
			Team:        entities.Team{ID: 12, Name: "Support", Slug: "support"},
			Role:        entities.RoleMember,
			MemberCount: 5,
			EventTypes:  []entities.EventType{{ID: 120}},
		},
	}}
	types := &fakeEventTypeRepo{personal: []entities.EventType{{ID: 1}}}
	s := newService(user, users, types)

	page, err := s.ListEventTypes(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListEventTypes() error = %v", err)
	}
	if len(page.Groups) != 3 {
		t.Fatalf("expected personal + 2 non-empty teams, got %d", len(page.Groups))
	}
	if !page.Groups[0].IsPersonal() {
		t.Fatal("personal group must come first")
	}
	sales := page.Groups[1]
	if *sales.TeamID != 10 || sales.Profile.Slug != "team/sales" || sales.Metadata.MembershipCount != 3 || sales.Metadata.ReadOnly {
		t.Fatalf("unexpected owner team group: %+v", sales)
	}
	for _, et := range sales.EventTypes {
		if et.Disabled {
			t.Fatal("team event types are not plan-gated")
		}
	}
	support := page.Groups[2]
	if *support.TeamID != 12 || !support.Metadata.ReadOnly {
		t.Fatalf("member team group must be read-only: %+v", support)
	}
	if len(page.Profiles) != 4 {
		t.Fatalf("profiles are listed before filtering, got %d", len(page.Profiles))
	}
	if page.Profiles[2].Slug != "team/empty" || page.Profiles[2].MembershipCount != 2 {
		t.Fatalf("unexpected profile: %+v", page.Profiles[2])
	}
}

func TestListEventTypesRedirectOutcomes(t *testing.T) {
	s := NewEventTypesService(&fakeUserRepo{users: map[uint]*entities.User{}}, &fakeEventTypeRepo{}, cutoff, nil)
	if _, err := s.ListEventTypes(context.Background(), 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	fresh := newUser(entities.PlanPro)
	fresh.CompletedOnboarding = false
	s = newService(fresh, &fakeUserRepo{}, &fakeEventTypeRepo{})
	if _, err := s.ListEventTypes(context.Background(), fresh.ID); !errors.Is(err, domain.ErrOnboardingRequired) {
		t.Fatalf("expected ErrOnboardingRequired, got %v", err)
	}

	veteran := newUser(entities.PlanPro)
	veteran.CompletedOnboarding = false
	veteran.CreatedAt = cutoff.Add(-time.Hour)
	s = newService(veteran, &fakeUserRepo{}, &fakeEventTypeRepo{})
	if _, err := s.ListEventTypes(context.Background(), veteran.ID); err != nil {
		t.Fatalf("accounts older than onboarding skip it, got %v", err)
	}
}

func TestListEventTypesStoreFailure(t *testing.T) {
	user := newUser(entities.PlanPro)
	boom := errors.New("boom")
	s := newService(user, &fakeUserRepo{}, &fakeEventTypeRepo{err: boom})
	if _, err := s.ListEventTypes(context.Background(), user.ID); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestResolveDiscordUser(t *testing.T) {
	user := newUser(entities.PlanPro)
	s := newService(user, &fakeUserRepo{}, &fakeEventTypeRepo{})

	id, err := s.ResolveDiscordUser(context.Background(), "42")
	if err != nil || id != user.ID {
		t.Fatalf("ResolveDiscordUser() = %d, %v", id, err)
	}
	if _, err := s.ResolveDiscordUser(context.Background(), "nope"); !errors.Is(err, domain.ErrDiscordAccountUnlinked) {
		t.Fatalf("expected ErrDiscordAccountUnlinked, got %v", err)
	}
}
