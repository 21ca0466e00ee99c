package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"calpages/internal/adapters/view"
	"calpages/internal/ports/input"
	"calpages/internal/ports/output"
	pkgdiscord "calpages/pkg/discord"
)

// Translator is what the bot needs from the i18n layer.
type Translator interface {
	output.Translator
	output.LocaleResolver
}

// Handler handles Discord interactions using the event types use case.
type Handler struct {
	eventTypes input.EventTypesUseCase
	tr         Translator
	publicURL  string
	upgradeURL string
	log        *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	eventTypes input.EventTypesUseCase,
	tr Translator,
	publicURL, upgradeURL string,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		eventTypes: eventTypes,
		tr:         tr,
		publicURL:  publicURL,
		upgradeURL: upgradeURL,
		log:        logger,
	}
}

// HandleEventTypes answers the slash command with the caller's event types.
func (h *Handler) HandleEventTypes(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if user == nil {
		return
	}
	locale := h.tr.ResolveLocale(string(i.Locale))
	data := h.eventTypesResponse(context.Background(), user.ID, locale)
	data.Flags = discordgo.MessageFlagsEphemeral
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}); err != nil {
		h.log.Error("discord respond", "err", err)
	}
}

// eventTypesResponse builds the reply for a Discord account.
func (h *Handler) eventTypesResponse(ctx context.Context, discordID, locale string) *discordgo.InteractionResponseData {
	userID, err := h.eventTypes.ResolveDiscordUser(ctx, discordID)
	if err != nil {
		return h.errorResponse(locale, err)
	}
	page, err := h.eventTypes.ListEventTypes(ctx, userID)
	if err != nil {
		return h.errorResponse(locale, err)
	}

	p := view.Build(page, h.tr, view.Options{
		Locale:     locale,
		PublicURL:  h.publicURL,
		UpgradeURL: h.upgradeURL,
	})
	data := &discordgo.InteractionResponseData{
		Embeds: pkgdiscord.BuildGroupEmbeds(p, func(count int) string {
			return h.tr.T(locale, "discord.members", map[string]any{"Count": count})
		}),
	}
	switch {
	case p.ShowEmptyState:
		data.Content = h.tr.T(locale, "discord.empty", nil)
	case p.ShowUpgradeAlert:
		data.Content = "⚠️ " + p.UpgradeTitle + " " + p.UpgradeMessage + " " + p.UpgradeURL
	}
	return data
}

func (h *Handler) errorResponse(locale string, err error) *discordgo.InteractionResponseData {
	key := pkgdiscord.ErrorMessageKey(err)
	if key == "error.generic" {
		h.log.Error("discord event types", "err", err)
	}
	return &discordgo.InteractionResponseData{Content: "❌ " + h.tr.T(locale, key, nil)}
}
