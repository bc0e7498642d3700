package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/creatorsconnections/tokboard/internal/services/tracker"
)

// StartTikTokCommand handles the /start_tiktok command
type StartTikTokCommand struct {
	BaseCommand
	trackerService tracker.Service
}

// NewStartTikTokCommand creates a new start_tiktok command handler
func NewStartTikTokCommand(trackerService tracker.Service) *StartTikTokCommand {
	return &StartTikTokCommand{
		BaseCommand: BaseCommand{
			Name:        "start_tiktok",
			Description: "Start tracking the configured creator's live broadcast",
		},
		trackerService: trackerService,
	}
}

// Handle processes a Discord interaction for the start_tiktok command
func (c *StartTikTokCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !isAdmin(i) {
		return RespondWithEphemeralMessage(s, i, "You need the Manage Server permission to use this command.")
	}

	err := c.trackerService.StartTracking(context.Background(), &tracker.StartTrackingInput{
		GuildID: i.GuildID,
	})
	switch {
	case err == nil:
		return RespondWithMessage(s, i, "Connected to the live! Gifts and taps are being tracked.")
	case errors.Is(err, tracker.ErrAlreadyTracking):
		return RespondWithEphemeralMessage(s, i, "Tracking is already running.")
	case errors.Is(err, tracker.ErrCreatorNotLive):
		return RespondWithEphemeralMessage(s, i, "The creator is not live right now. Try again once the broadcast starts.")
	case errors.Is(err, tracker.ErrTrackingDisabled), errors.Is(err, tracker.ErrNoCreatorHandle):
		return RespondWithEphemeralMessage(s, i, "No creator is configured yet. Use `/toktrack` first.")
	case errors.Is(err, tracker.ErrNoTargetChannel):
		return RespondWithEphemeralMessage(s, i, "No target channel is configured yet. Use `/set_target_channel` first.")
	default:
		return RespondWithError(s, i, fmt.Sprintf("Failed to start tracking: %v", err))
	}
}

// StopTikTokCommand handles the /stop_tiktok command
type StopTikTokCommand struct {
	BaseCommand
	trackerService tracker.Service
}

// NewStopTikTokCommand creates a new stop_tiktok command handler
func NewStopTikTokCommand(trackerService tracker.Service) *StopTikTokCommand {
	return &StopTikTokCommand{
		BaseCommand: BaseCommand{
			Name:        "stop_tiktok",
			Description: "Stop tracking and post the final session leaderboard",
		},
		trackerService: trackerService,
	}
}

// Handle processes a Discord interaction for the stop_tiktok command
func (c *StopTikTokCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !isAdmin(i) {
		return RespondWithEphemeralMessage(s, i, "You need the Manage Server permission to use this command.")
	}

	err := c.trackerService.StopTracking(context.Background(), &tracker.StopTrackingInput{
		GuildID: i.GuildID,
	})
	switch {
	case err == nil:
		return RespondWithMessage(s, i, "Tracking stopped. The final leaderboard has been posted.")
	case errors.Is(err, tracker.ErrNotTracking):
		return RespondWithEphemeralMessage(s, i, "Tracking is not running.")
	default:
		return RespondWithError(s, i, fmt.Sprintf("Failed to stop tracking: %v", err))
	}
}
