package storage

import (
	"context"
	"fmt"
	"strings"
)

// Store is the key-value persistence contract the repositories run on: one
// fixed key per entity type, the value being the JSON-serialized full
// collection.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}

// NewFromEnv builds the Store selected by STORAGE_BACKEND ("redis" or
// "dynamodb"). Redis is the default.
func NewFromEnv(ctx context.Context) (Store, error) {
	backend := strings.ToLower(strings.TrimSpace(getenvDefault("STORAGE_BACKEND", "redis")))
	switch backend {
	case "redis":
		return NewRedisStore(getenvDefault("REDIS_ADDR", "localhost:6379"))
	case "dynamodb":
		return NewDynamoDBStore(ctx)
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", backend)
	}
}
