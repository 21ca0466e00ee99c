package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

const commandEventTypes = "event-types"

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	handler *Handler
	log     *slog.Logger
}

// NewBot creates a Bot authenticated with token that answers through handler.
func NewBot(token string, handler *Handler, logger *slog.Logger) (*Bot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	bot := &Bot{
		session: s,
		handler: handler,
		log:     logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name == commandEventTypes {
		b.handler.HandleEventTypes(s, i)
	}
}

// Start runs the bot until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}
	defer b.session.Close()

	cmd := &discordgo.ApplicationCommand{
		Name:        commandEventTypes,
		Description: b.handler.tr.T("en", "discord.command_description", nil),
		DescriptionLocalizations: &map[discordgo.Locale]string{
			discordgo.French: b.handler.tr.T("fr", "discord.command_description", nil),
		},
	}
	if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd); err != nil {
		b.log.Warn("⚠️ discord command registration failed", "command", cmd.Name, "err", err)
	}

	b.log.Info("🤖 discord bot online", "user", b.session.State.User.Username)
	<-ctx.Done()
	return nil
}
