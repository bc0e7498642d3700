package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/creatorsconnections/tokboard/internal/models"
	guildconfigRepo "github.com/creatorsconnections/tokboard/internal/repositories/guildconfig"
	"github.com/creatorsconnections/tokboard/internal/services/handoff"
	"github.com/sirupsen/logrus"
)

const memberPageSize = 1000

// RoleRotator keeps the Top Gifter and Sore Finger roles on exactly one
// member each
type RoleRotator struct {
	session         *discordgo.Session
	guildConfigRepo guildconfigRepo.Repository
	logger          *logrus.Entry
}

var _ handoff.RoleRotator = (*RoleRotator)(nil)

// NewRoleRotator creates a new role rotator
func NewRoleRotator(session *discordgo.Session, guildConfigRepo guildconfigRepo.Repository, logger *logrus.Entry) (*RoleRotator, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if guildConfigRepo == nil {
		return nil, errors.New("guild config repository cannot be nil")
	}

	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}

	return &RoleRotator{
		session:         session,
		guildConfigRepo: guildConfigRepo,
		logger:          logger,
	}, nil
}

// SetRoleHolder makes the member the sole holder of the role. Setting the
// same holder again is a no-op, so repeated rotations are safe.
func (r *RoleRotator) SetRoleHolder(ctx context.Context, input *handoff.SetRoleHolderInput) error {
	if input == nil || input.GuildID == "" || input.MemberID == "" {
		return errors.New("input, guild ID and member ID cannot be empty")
	}

	roleID, err := ensureRole(r.session, input.GuildID, input.Role)
	if err != nil {
		return err
	}

	holders, err := r.currentHolders(input.GuildID, roleID)
	if err != nil {
		return err
	}

	alreadyHolder := false
	for _, holder := range holders {
		if holder == input.MemberID {
			alreadyHolder = true
			continue
		}
		if err := r.session.GuildMemberRoleRemove(input.GuildID, holder, roleID); err != nil {
			return fmt.Errorf("failed to remove role from previous holder: %w", err)
		}
	}

	if alreadyHolder {
		return nil
	}

	if err := r.session.GuildMemberRoleAdd(input.GuildID, input.MemberID, roleID); err != nil {
		return fmt.Errorf("failed to add role to new holder: %w", err)
	}

	r.celebrate(ctx, input)

	r.logger.WithFields(logrus.Fields{
		"guild_id":  input.GuildID,
		"role":      input.Role,
		"member_id": input.MemberID,
	}).Info("rotated role to new holder")
	return nil
}

// celebrate posts the role announcement to the guild's channel; a missing
// channel only skips the message
func (r *RoleRotator) celebrate(ctx context.Context, input *handoff.SetRoleHolderInput) {
	cfg, err := r.guildConfigRepo.Get(ctx, &guildconfigRepo.GetInput{GuildID: input.GuildID})
	if err != nil || cfg.ChannelID == "" {
		return
	}

	var message string
	switch input.Role {
	case models.RoleSoreFinger:
		message = fmt.Sprintf("<@%s> now has sore fingers! 👆 Top tapper of the week!", input.MemberID)
	case models.RoleTopGifter:
		message = fmt.Sprintf("<@%s> is the new Top Gifter! 🎁", input.MemberID)
	default:
		return
	}

	if _, err := r.session.ChannelMessageSend(cfg.ChannelID, message); err != nil {
		r.logger.WithField("guild_id", input.GuildID).WithError(err).Warn("failed to announce role holder")
	}
}

// currentHolders lists the members currently carrying the role
func (r *RoleRotator) currentHolders(guildID, roleID string) ([]string, error) {
	var holders []string

	after := ""
	for {
		members, err := r.session.GuildMembers(guildID, after, memberPageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list guild members: %w", err)
		}
		if len(members) == 0 {
			break
		}

		for _, member := range members {
			for _, id := range member.Roles {
				if id == roleID {
					holders = append(holders, member.User.ID)
					break
				}
			}
		}

		if len(members) < memberPageSize {
			break
		}
		after = members[len(members)-1].User.ID
	}

	return holders, nil
}

// ensureRole finds the named role in the guild, creating it if missing
func ensureRole(session *discordgo.Session, guildID string, kind models.RoleKind) (string, error) {
	name := kind.RoleName()

	roles, err := session.GuildRoles(guildID)
	if err != nil {
		return "", fmt.Errorf("failed to list guild roles: %w", err)
	}

	for _, role := range roles {
		if role.Name == name {
			return role.ID, nil
		}
	}

	color := embedColor
	hoist := true
	created, err := session.GuildRoleCreate(guildID, &discordgo.RoleParams{
		Name:  name,
		Color: &color,
		Hoist: &hoist,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create role %s: %w", name, err)
	}
	return created.ID, nil
}
