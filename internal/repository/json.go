package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// setJSON stores value as a JSON blob; ttl 0 keeps the key forever.
func setJSON(ctx context.Context, client *redis.Client, key string, value any, ttl time.Duration) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal %s: %w", key, err)
	}

	if err = client.Set(ctx, key, valueJSON, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}

// getJSON loads a JSON blob into a new T, returning notFound when the key is missing.
func getJSON[T any](ctx context.Context, client *redis.Client, key string, notFound error) (*T, error) {
	response, err := client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, notFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	var value T
	if err = json.Unmarshal([]byte(response), &value); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	return &value, nil
}
