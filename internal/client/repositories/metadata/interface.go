// Package metadata persists small key/value records in the local client
// database. The session store keeps the auth token and user summary here.
package metadata

import (
	"context"
)

// Repository is a key/value table. Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
