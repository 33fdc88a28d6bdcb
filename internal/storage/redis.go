package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
)

// CharacterTTL is how long an untouched character state survives in
// Redis. Every save refreshes it.
const CharacterTTL = 24 * time.Hour

// RedisStorage implements the Storage interface using Redis for
// character state.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance
func NewRedisStorage(redisURL string, logger *slog.Logger) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	return &RedisStorage{
		client: rdb,
		logger: logger,
	}
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func characterKey(id uuid.UUID) string {
	return "character:" + id.String()
}

func (r *RedisStorage) SaveCharacter(ctx context.Context, id uuid.UUID, st *character.State) error {
	st.UpdatedAt = time.Now()

	data, err := json.Marshal(st)
	if err != nil {
		r.logger.Error("Failed to marshal character", "uuid", id, "error", err)
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	cmd := r.client.Set(ctx, characterKey(id), string(data), CharacterTTL)
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to save character", "uuid", id, "error", err)
		return fmt.Errorf("failed to save character: %w", err)
	}

	return nil
}

func (r *RedisStorage) LoadCharacter(ctx context.Context, id uuid.UUID) (*character.State, error) {
	cmd := r.client.Get(ctx, characterKey(id))
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			r.logger.Warn("Character not found", "uuid", id)
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load character", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load character: %w", err)
	}

	var st character.State
	if err := json.Unmarshal([]byte(cmd.Val()), &st); err != nil {
		r.logger.Error("Failed to unmarshal character", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	return &st, nil
}

func (r *RedisStorage) DeleteCharacter(ctx context.Context, id uuid.UUID) error {
	cmd := r.client.Del(ctx, characterKey(id))
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to delete character", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}
