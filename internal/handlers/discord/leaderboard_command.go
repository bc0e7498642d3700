package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/creatorsconnections/tokboard/internal/services/board"
	"github.com/creatorsconnections/tokboard/internal/services/tracker"
)

// LeaderboardCommand handles the /leaderboard command
type LeaderboardCommand struct {
	BaseCommand
	boardService   board.Service
	trackerService tracker.Service
}

// NewLeaderboardCommand creates a new leaderboard command handler
func NewLeaderboardCommand(boardService board.Service, trackerService tracker.Service) *LeaderboardCommand {
	return &LeaderboardCommand{
		BaseCommand: BaseCommand{
			Name:        "leaderboard",
			Description: "Show the live session or weekly leaderboard",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "session",
					Description: "Show the current live session's top gifters and tappers",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "week",
					Description: "Show this week's top gifters and tappers",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the tracking status",
				},
			},
		},
		boardService:   boardService,
		trackerService: trackerService,
	}
}

// Handle processes a Discord interaction for the leaderboard command
func (c *LeaderboardCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	switch data.Options[0].Name {
	case "session":
		return c.handleSession(s, i)
	case "week":
		return c.handleWeek(s, i)
	case "status":
		return c.handleStatus(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *LeaderboardCommand) handleSession(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	snapshot, err := c.boardService.SessionSnapshot(context.Background(), &board.SessionSnapshotInput{
		GuildID: i.GuildID,
	})
	if err != nil {
		if errors.Is(err, board.ErrNoOpenSession) {
			return RespondWithEphemeralMessage(s, i, "No live session is open right now.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Failed to get the session leaderboard: %v", err))
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{renderSnapshot(snapshot)},
		},
	})
}

func (c *LeaderboardCommand) handleWeek(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	snapshot, err := c.boardService.WeeklySnapshot(context.Background(), &board.WeeklySnapshotInput{
		GuildID: i.GuildID,
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to get the weekly leaderboard: %v", err))
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{renderSnapshot(snapshot)},
		},
	})
}

func (c *LeaderboardCommand) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	status, err := c.trackerService.Status(context.Background(), &tracker.StatusInput{
		GuildID: i.GuildID,
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to get tracking status: %v", err))
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Connection",
			Value:  string(status.Connection),
			Inline: true,
		},
		{
			Name:   "Session",
			Value:  string(status.Session),
			Inline: true,
		},
	}
	if status.CreatorHandle != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Creator",
			Value:  "@" + status.CreatorHandle,
			Inline: true,
		})
	}
	if status.SessionID != 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Session ID",
			Value:  fmt.Sprintf("%d", status.SessionID),
			Inline: true,
		})
	}

	return RespondWithEmbed(s, i, "Tracking Status", "", fields)
}
