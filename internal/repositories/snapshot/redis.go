package snapshot

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
	parkedKeyPrefix = "parked_snapshot:"
	parkedSetPrefix = "parked_snapshots:"
)

// Config holds configuration for the Redis snapshot repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed snapshot repository
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

// Park persists an undeliverable snapshot to Redis
func (r *redisRepository) Park(ctx context.Context, input *ParkInput) error {
	if input == nil || input.Parked == nil || input.Parked.Snapshot == nil {
		return errors.New("input, parked record and snapshot cannot be nil")
	}

	parked := input.Parked
	if parked.ID == "" {
		return errors.New("parked snapshot ID cannot be empty")
	}

	guildID := parked.Snapshot.GuildID
	if guildID == "" {
		return errors.New("snapshot guild ID cannot be empty")
	}

	parkedJSON, err := json.Marshal(parked)
	if err != nil {
		return fmt.Errorf("failed to marshal parked snapshot: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s:%s", parkedKeyPrefix, guildID, parked.ID), parkedJSON, 0)
	pipe.SAdd(ctx, parkedSetPrefix+guildID, parked.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to park snapshot: %w", err)
	}

	return nil
}

// List retrieves all parked snapshots for a guild from Redis
func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, parkedSetPrefix+input.GuildID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list parked snapshots: %w", err)
	}

	output := &ListOutput{}
	for _, id := range ids {
		parkedJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s:%s", parkedKeyPrefix, input.GuildID, id)).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get parked snapshot %s: %w", id, err)
		}

		var parked models.ParkedSnapshot
		if err := json.Unmarshal([]byte(parkedJSON), &parked); err != nil {
			return nil, fmt.Errorf("failed to unmarshal parked snapshot %s: %w", id, err)
		}

		output.Parked = append(output.Parked, &parked)
	}

	return output, nil
}
