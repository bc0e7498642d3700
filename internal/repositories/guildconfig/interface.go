package guildconfig

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/creatorsconnections/tokboard/internal/repositories/guildconfig Repository

import (
	"context"

	"github.com/creatorsconnections/tokboard/internal/models"
)

// Repository defines the interface for guild configuration persistence
type Repository interface {
	// Save persists a guild's configuration
	Save(ctx context.Context, input *SaveInput) error

	// Get retrieves a guild's configuration
	Get(ctx context.Context, input *GetInput) (*models.GuildConfig, error)

	// List retrieves configurations for all known guilds
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}
