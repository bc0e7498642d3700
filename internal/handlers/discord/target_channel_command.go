package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	guildconfigRepo "github.com/creatorsconnections/tokboard/internal/repositories/guildconfig"
)

// SetTargetChannelCommand handles the /set_target_channel command
type SetTargetChannelCommand struct {
	BaseCommand
	guildConfigRepo guildconfigRepo.Repository
}

// NewSetTargetChannelCommand creates a new set_target_channel command handler
func NewSetTargetChannelCommand(guildConfigRepo guildconfigRepo.Repository) *SetTargetChannelCommand {
	return &SetTargetChannelCommand{
		BaseCommand: BaseCommand{
			Name:        "set_target_channel",
			Description: "Set the channel leaderboards and announcements are posted to",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "The channel to post to",
					Required:    true,
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildText,
					},
				},
			},
		},
		guildConfigRepo: guildConfigRepo,
	}
}

// Handle processes a Discord interaction for the set_target_channel command
func (c *SetTargetChannelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !isAdmin(i) {
		return RespondWithEphemeralMessage(s, i, "You need the Manage Server permission to use this command.")
	}

	ctx := context.Background()
	channel := i.ApplicationCommandData().Options[0].ChannelValue(s)
	if channel == nil {
		return RespondWithEphemeralMessage(s, i, "Please select a text channel.")
	}

	cfg, err := getOrInitConfig(ctx, c.guildConfigRepo, i.GuildID)
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to load guild config: %v", err))
	}

	cfg.ChannelID = channel.ID

	if err := c.guildConfigRepo.Save(ctx, &guildconfigRepo.SaveInput{Config: cfg}); err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to save guild config: %v", err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Leaderboards will be posted to <#%s>.", channel.ID))
}
