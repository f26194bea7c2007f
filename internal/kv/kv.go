// Package kv is the generic key-value persistence boundary. The leaderboard
// is stored as one serialized blob under a fixed key, so the interface stays
// deliberately small: get, set, nothing else.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is a string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
