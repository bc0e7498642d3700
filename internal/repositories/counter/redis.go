package counter

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
	weeklyKeyPrefix = "weekly_counters:"
	resetKeyPrefix  = "weekly_reset:"
)

// Config holds configuration for the Redis counter repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed counter repository
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

// SaveWeekly persists the full weekly counter set to Redis
func (r *redisRepository) SaveWeekly(ctx context.Context, input *SaveWeeklyInput) error {
	if input == nil || input.Counters == nil {
		return errors.New("input and counters cannot be nil")
	}

	if input.Counters.GuildID == "" {
		return errors.New("guild ID cannot be empty")
	}

	countersJSON, err := json.Marshal(input.Counters)
	if err != nil {
		return fmt.Errorf("failed to marshal weekly counters: %w", err)
	}

	if err := r.client.Set(ctx, weeklyKeyPrefix+input.Counters.GuildID, countersJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save weekly counters: %w", err)
	}

	return nil
}

// GetWeekly retrieves the weekly counter set from Redis
func (r *redisRepository) GetWeekly(ctx context.Context, input *GetWeeklyInput) (*models.CounterSet, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	countersJSON, err := r.client.Get(ctx, weeklyKeyPrefix+input.GuildID).Result()
	if err != nil {
		if err == redis.Nil {
			return models.NewCounterSet(input.GuildID), nil
		}
		return nil, fmt.Errorf("failed to get weekly counters: %w", err)
	}

	var counters models.CounterSet
	if err := json.Unmarshal([]byte(countersJSON), &counters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weekly counters: %w", err)
	}

	if counters.Entries == nil {
		counters.Entries = make(map[string]*models.CounterEntry)
	}

	return &counters, nil
}

// SetLastReset records the last weekly reset boundary in Redis
func (r *redisRepository) SetLastReset(ctx context.Context, input *SetLastResetInput) error {
	if input == nil || input.GuildID == "" || input.Boundary == "" {
		return errors.New("input, guild ID and boundary cannot be empty")
	}

	if err := r.client.Set(ctx, resetKeyPrefix+input.GuildID, input.Boundary, 0).Err(); err != nil {
		return fmt.Errorf("failed to save last reset: %w", err)
	}

	return nil
}

// GetLastReset retrieves the last weekly reset boundary from Redis
func (r *redisRepository) GetLastReset(ctx context.Context, input *GetLastResetInput) (*GetLastResetOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	boundary, err := r.client.Get(ctx, resetKeyPrefix+input.GuildID).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetLastResetOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get last reset: %w", err)
	}

	return &GetLastResetOutput{Boundary: boundary}, nil
}
