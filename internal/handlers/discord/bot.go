package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/creatorsconnections/tokboard/internal/models"
	guildconfigRepo "github.com/creatorsconnections/tokboard/internal/repositories/guildconfig"
	linkRepo "github.com/creatorsconnections/tokboard/internal/repositories/linkmap"
	"github.com/creatorsconnections/tokboard/internal/services/board"
	"github.com/creatorsconnections/tokboard/internal/services/tracker"
	"github.com/sirupsen/logrus"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	logger     *logrus.Entry
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the Discord session; created in main so the publisher
	// and role rotator can share it
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Tracking supervisor
	TrackerService tracker.Service

	// Leaderboard aggregator
	BoardService board.Service

	// Handle-to-member links
	LinkRepo linkRepo.Repository

	// Per-guild tracking configuration
	GuildConfigRepo guildconfigRepo.Repository

	Logger *logrus.Entry
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.TrackerService == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	if cfg.BoardService == nil {
		return nil, errors.New("board service cannot be nil")
	}

	if cfg.LinkRepo == nil {
		return nil, errors.New("link repository cannot be nil")
	}

	if cfg.GuildConfigRepo == nil {
		return nil, errors.New("guild config repository cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		logger:     logger,
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	// Bootstrap the rotating roles when a guild becomes available
	cfg.Session.AddHandler(bot.handleGuildCreate)

	return bot, nil
}

// Session returns the underlying Discord session, for the publisher and
// role rotator
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	commands := []CommandHandler{
		NewTokTrackCommand(b.config.GuildConfigRepo, b.config.TrackerService),
		NewTokConnectCommand(b.config.LinkRepo, b.config.BoardService),
		NewSetTargetChannelCommand(b.config.GuildConfigRepo),
		NewStartTikTokCommand(b.config.TrackerService),
		NewStopTikTokCommand(b.config.TrackerService),
		NewLeaderboardCommand(b.config.BoardService, b.config.TrackerService),
	}
	for _, cmd := range commands {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			b.logger.WithField("command", cmdName).WithError(err).Warn("failed to delete command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// Register the command with Discord
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.WithFields(logrus.Fields{
		"command":    cmd.GetName(),
		"command_id": createdCmd.ID,
	}).Info("registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
		if err := h.Handle(s, i); err != nil {
			b.logger.WithField("command", i.ApplicationCommandData().Name).WithError(err).Error("failed to handle command")
		}
	}
}

// handleGuildCreate makes sure the rotating roles exist in every guild the
// bot can see
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	for _, kind := range []models.RoleKind{models.RoleTopGifter, models.RoleSoreFinger} {
		if _, err := ensureRole(s, g.ID, kind); err != nil {
			b.logger.WithFields(logrus.Fields{
				"guild_id": g.ID,
				"role":     kind,
			}).WithError(err).Warn("failed to ensure role")
		}
	}
}

// getOrInitConfig loads a guild's configuration, starting a fresh one the
// first time a guild is configured
func getOrInitConfig(ctx context.Context, repo guildconfigRepo.Repository, guildID string) (*models.GuildConfig, error) {
	cfg, err := repo.Get(ctx, &guildconfigRepo.GetInput{GuildID: guildID})
	if err != nil {
		if errors.Is(err, guildconfigRepo.ErrConfigNotFound) {
			return &models.GuildConfig{GuildID: guildID}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// isAdmin reports whether the invoking member can manage the server
func isAdmin(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	return i.Member.Permissions&discordgo.PermissionManageServer != 0
}
