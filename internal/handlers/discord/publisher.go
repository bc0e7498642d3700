package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	guildconfigRepo "github.com/creatorsconnections/tokboard/internal/repositories/guildconfig"
	"github.com/creatorsconnections/tokboard/internal/services/handoff"
)

// Publisher posts leaderboards and announcements to each guild's
// configured target channel
type Publisher struct {
	session         *discordgo.Session
	guildConfigRepo guildconfigRepo.Repository
}

var _ handoff.Publisher = (*Publisher)(nil)

// NewPublisher creates a new publisher
func NewPublisher(session *discordgo.Session, guildConfigRepo guildconfigRepo.Repository) (*Publisher, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if guildConfigRepo == nil {
		return nil, errors.New("guild config repository cannot be nil")
	}

	return &Publisher{
		session:         session,
		guildConfigRepo: guildConfigRepo,
	}, nil
}

// Publish posts a rendered leaderboard snapshot to the guild's channel
func (p *Publisher) Publish(ctx context.Context, input *handoff.PublishInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	channelID, err := p.targetChannel(ctx, input.Snapshot.GuildID)
	if err != nil {
		return err
	}

	_, err = p.session.ChannelMessageSendEmbed(channelID, renderSnapshot(input.Snapshot))
	if err != nil {
		return fmt.Errorf("failed to post leaderboard: %w", err)
	}
	return nil
}

// Announce posts a plain status message to the guild's channel
func (p *Publisher) Announce(ctx context.Context, input *handoff.AnnounceInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	channelID, err := p.targetChannel(ctx, input.GuildID)
	if err != nil {
		return err
	}

	_, err = p.session.ChannelMessageSend(channelID, input.Message)
	if err != nil {
		return fmt.Errorf("failed to post announcement: %w", err)
	}
	return nil
}

func (p *Publisher) targetChannel(ctx context.Context, guildID string) (string, error) {
	cfg, err := p.guildConfigRepo.Get(ctx, &guildconfigRepo.GetInput{GuildID: guildID})
	if err != nil {
		return "", fmt.Errorf("failed to load guild config: %w", err)
	}
	if cfg.ChannelID == "" {
		return "", errors.New("no target channel configured")
	}
	return cfg.ChannelID, nil
}
