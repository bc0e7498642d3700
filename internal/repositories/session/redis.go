package session

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
	sessionKeyPrefix  = "session:"
	sequenceKeyPrefix = "session_seq:"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

// NextSessionID allocates a monotonic session ID using a per-guild counter
func (r *redisRepository) NextSessionID(ctx context.Context, input *NextSessionIDInput) (*NextSessionIDOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	id, err := r.client.Incr(ctx, sequenceKeyPrefix+input.GuildID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate session ID: %w", err)
	}

	return &NextSessionIDOutput{SessionID: id}, nil
}

// SaveSession persists a session record to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sess := input.Session
	if sess.GuildID == "" || sess.ID == 0 {
		return errors.New("session guild ID and ID cannot be empty")
	}

	sessJSON, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := fmt.Sprintf("%s%s:%d", sessionKeyPrefix, sess.GuildID, sess.ID)
	if err := r.client.Set(ctx, key, sessJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.GuildID == "" || input.SessionID == 0 {
		return nil, errors.New("input, guild ID and session ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s:%d", sessionKeyPrefix, input.GuildID, input.SessionID)
	sessJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(sessJSON), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}
