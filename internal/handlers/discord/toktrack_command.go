package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	guildconfigRepo "github.com/creatorsconnections/tokboard/internal/repositories/guildconfig"
	"github.com/creatorsconnections/tokboard/internal/services/tracker"
)

// TokTrackCommand handles the /toktrack command
type TokTrackCommand struct {
	BaseCommand
	guildConfigRepo guildconfigRepo.Repository
	trackerService  tracker.Service
}

// NewTokTrackCommand creates a new toktrack command handler
func NewTokTrackCommand(guildConfigRepo guildconfigRepo.Repository, trackerService tracker.Service) *TokTrackCommand {
	return &TokTrackCommand{
		BaseCommand: BaseCommand{
			Name:        "toktrack",
			Description: "Set the TikTok creator to track and enable tracking",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "handle",
					Description: "The creator's TikTok username",
					Required:    true,
				},
			},
		},
		guildConfigRepo: guildConfigRepo,
		trackerService:  trackerService,
	}
}

// Handle processes a Discord interaction for the toktrack command
func (c *TokTrackCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !isAdmin(i) {
		return RespondWithEphemeralMessage(s, i, "You need the Manage Server permission to use this command.")
	}

	ctx := context.Background()
	guildID := i.GuildID

	// changing the tracked creator mid-broadcast would orphan the session
	status, err := c.trackerService.Status(ctx, &tracker.StatusInput{GuildID: guildID})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to check tracking status: %v", err))
	}
	if status.Connection != tracker.ConnectionDisconnected {
		return RespondWithEphemeralMessage(s, i, "Tracking is running. Use `/stop_tiktok` before changing the tracked creator.")
	}

	handle := strings.TrimPrefix(i.ApplicationCommandData().Options[0].StringValue(), "@")
	if handle == "" {
		return RespondWithEphemeralMessage(s, i, "Please provide a TikTok username.")
	}

	cfg, err := getOrInitConfig(ctx, c.guildConfigRepo, guildID)
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to load guild config: %v", err))
	}

	cfg.CreatorHandle = handle
	cfg.TrackingEnabled = true

	if err := c.guildConfigRepo.Save(ctx, &guildconfigRepo.SaveInput{Config: cfg}); err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to save guild config: %v", err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Now set up to track **@%s**. Use `/start_tiktok` when they go live!", handle))
}
