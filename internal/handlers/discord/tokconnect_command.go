package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	linkRepo "github.com/creatorsconnections/tokboard/internal/repositories/linkmap"
	"github.com/creatorsconnections/tokboard/internal/services/board"
)

// TokConnectCommand handles the /tokconnect command
type TokConnectCommand struct {
	BaseCommand
	linkRepo     linkRepo.Repository
	boardService board.Service
}

// NewTokConnectCommand creates a new tokconnect command handler
func NewTokConnectCommand(linkRepo linkRepo.Repository, boardService board.Service) *TokConnectCommand {
	return &TokConnectCommand{
		BaseCommand: BaseCommand{
			Name:        "tokconnect",
			Description: "Link your TikTok username to your Discord account",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "handle",
					Description: "Your TikTok username",
					Required:    true,
				},
			},
		},
		linkRepo:     linkRepo,
		boardService: boardService,
	}
}

// Handle processes a Discord interaction for the tokconnect command.
// Linking also claims any totals already accumulated under the raw handle.
func (c *TokConnectCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Member == nil {
		return RespondWithEphemeralMessage(s, i, "This command can only be used in a server.")
	}

	handle := strings.TrimPrefix(i.ApplicationCommandData().Options[0].StringValue(), "@")
	if handle == "" {
		return RespondWithEphemeralMessage(s, i, "Please provide a TikTok username.")
	}

	ctx := context.Background()
	guildID := i.GuildID
	memberID := i.Member.User.ID

	err := c.linkRepo.Link(ctx, &linkRepo.LinkInput{
		GuildID:  guildID,
		Handle:   handle,
		MemberID: memberID,
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to link your account: %v", err))
	}

	err = c.boardService.MergeLink(ctx, &board.MergeLinkInput{
		GuildID:  guildID,
		Handle:   handle,
		MemberID: memberID,
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Linked, but failed to claim earlier totals: %v", err))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Linked **@%s** to your Discord account. Your gifts and taps now count under your name!", handle))
}
