package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"calpages/internal/domain"
	"calpages/internal/domain/entities"
	"calpages/internal/ports/input"
	"calpages/internal/ports/output"
)

var _ input.EventTypesUseCase = (*EventTypesService)(nil)

type EventTypesService struct {
	userRepo         output.UserRepository
	eventTypeRepo    output.EventTypeRepository
	onboardingCutoff time.Time
	log              *slog.Logger
}

func NewEventTypesService(
	userRepo output.UserRepository,
	eventTypeRepo output.EventTypeRepository,
	onboardingCutoff time.Time,
	logger *slog.Logger,
) *EventTypesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventTypesService{
		userRepo:         userRepo,
		eventTypeRepo:    eventTypeRepo,
		onboardingCutoff: onboardingCutoff,
		log:              logger,
	}
}

func (s *EventTypesService) ListEventTypes(ctx context.Context, userID uint) (*entities.EventTypesPage, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.needsOnboarding(user) {
		return nil, domain.ErrOnboardingRequired
	}

	var (
		current, legacy []entities.EventType
		memberships     []entities.Membership
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.eventTypeRepo.FindPersonalByUserID(gctx, user.ID)
		return err
	})
	g.Go(func() error {
		var err error
		legacy, err = s.eventTypeRepo.FindByOwnerID(gctx, user.ID)
		return err
	})
	g.Go(func() error {
		var err error
		memberships, err = s.userRepo.FindAcceptedMemberships(gctx, user.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load event types: %w", err)
	}

	personal := domain.MergeEventTypes(current, legacy)
	domain.ApplyPlanGate(user.Plan, personal)

	groups := BuildGroups(user, personal, memberships)
	page := &entities.EventTypesPage{
		User:         *user,
		Groups:       NonEmptyGroups(groups),
		Profiles:     ProfileSummaries(groups),
		CanAddEvents: domain.CanAddEventTypes(user.Plan, len(personal)),
	}
	s.log.DebugContext(ctx, "event types page built",
		"user_id", user.ID,
		"groups", len(page.Groups),
		"personal", len(personal),
		"can_add", page.CanAddEvents,
	)
	return page, nil
}

func (s *EventTypesService) ResolveDiscordUser(ctx context.Context, discordID string) (uint, error) {
	user, err := s.userRepo.FindByDiscordID(ctx, discordID)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// needsOnboarding is true for users created after onboarding shipped who
// never finished it. Older accounts are not sent back through it.
func (s *EventTypesService) needsOnboarding(user *entities.User) bool {
	return !user.CompletedOnboarding && user.CreatedAt.After(s.onboardingCutoff)
}
