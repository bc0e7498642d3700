package guildconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/creatorsconnections/tokboard/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	configKeyPrefix = "guild_config:"
	guildSetKey     = "guild_configs"
)

// ErrConfigNotFound is returned when a guild has no stored configuration
var ErrConfigNotFound = errors.New("guild config not found")

// Config holds configuration for the Redis guild config repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed guild config repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Save persists a guild's configuration to Redis
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Config == nil {
		return errors.New("input and config cannot be nil")
	}

	cfg := input.Config
	if cfg.GuildID == "" {
		return errors.New("guild ID cannot be empty")
	}

	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal guild config: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, configKeyPrefix+cfg.GuildID, cfgJSON, 0)
	pipe.SAdd(ctx, guildSetKey, cfg.GuildID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save guild config: %w", err)
	}

	return nil
}

// Get retrieves a guild's configuration from Redis
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*models.GuildConfig, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	cfgJSON, err := r.client.Get(ctx, configKeyPrefix+input.GuildID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to get guild config: %w", err)
	}

	var cfg models.GuildConfig
	if err := json.Unmarshal([]byte(cfgJSON), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guild config: %w", err)
	}

	return &cfg, nil
}

// List retrieves all stored guild configurations from Redis
func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	guildIDs, err := r.client.SMembers(ctx, guildSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list guilds: %w", err)
	}

	output := &ListOutput{}
	for _, guildID := range guildIDs {
		cfg, err := r.Get(ctx, &GetInput{GuildID: guildID})
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				continue
			}
			return nil, err
		}
		output.Configs = append(output.Configs, cfg)
	}

	return output, nil
}
