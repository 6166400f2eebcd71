// Package store defines the key-value contract every persistent component is
// built on. Values are opaque strings; keys may carry a time-to-live.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key is absent or expired.
var ErrNotFound = errors.New("key not found")

// NoExpiry stores a value without a time-to-live.
const NoExpiry time.Duration = 0

// KV is a durable, possibly eventually-consistent associative store.
type KV interface {
	// Get returns the value under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Put overwrites key. ttl <= 0 means the key never expires.
	Put(ctx context.Context, key, value string, ttl time.Duration) error
	// List returns every live key starting with prefix, in no particular order.
	List(ctx context.Context, prefix string) ([]string, error)
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
