package linkmap

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	linkKeyPrefix = "link:"
)

// ErrLinkNotFound is returned when a handle has no registered link
var ErrLinkNotFound = errors.New("link not found")

// Config holds configuration for the Redis link map repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed link map repository
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

func linkKey(guildID, handle string) string {
	return fmt.Sprintf("%s%s:%s", linkKeyPrefix, guildID, handle)
}

// Link records a handle-to-member link in Redis
func (r *redisRepository) Link(ctx context.Context, input *LinkInput) error {
	if input == nil || input.GuildID == "" || input.Handle == "" || input.MemberID == "" {
		return errors.New("input, guild ID, handle and member ID cannot be empty")
	}

	if err := r.client.Set(ctx, linkKey(input.GuildID, input.Handle), input.MemberID, 0).Err(); err != nil {
		return fmt.Errorf("failed to save link: %w", err)
	}

	return nil
}

// Resolve looks up the member linked to a handle in Redis
func (r *redisRepository) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil || input.GuildID == "" || input.Handle == "" {
		return nil, errors.New("input, guild ID and handle cannot be empty")
	}

	memberID, err := r.client.Get(ctx, linkKey(input.GuildID, input.Handle)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to resolve link: %w", err)
	}

	return &ResolveOutput{MemberID: memberID}, nil
}
