// Package store provides durable key-value storage with per-entry expiry for
// workflow checkpoints, conversation history, and hiring profiles.
package store

import (
	"context"
	"time"
)

// Default TTLs for persisted records. Profiles are long-lived summaries and
// outlive the working checkpoint by an order of magnitude.
const (
	DefaultStateTTL   = 24 * time.Hour
	ProfileTTLFactor  = 30
	DefaultProfileTTL = ProfileTTLFactor * DefaultStateTTL

	// MaxRecentProfiles bounds the recent-profiles index.
	MaxRecentProfiles = 100
)

// Store is the key-value contract the engine and gateway persist through.
// Implementations must treat each key independently (no cross-key
// transactions) and make single-key writes atomic: a concurrent reader never
// observes a half-written value.
type Store interface {
	// SetWithExpiry stores value under key, replacing any previous value.
	// The entry becomes absent after ttl. A ttl of zero means no expiry.
	SetWithExpiry(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns the value for key. The second return is false if the key
	// is absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Delete removes key, reporting whether it existed.
	Delete(ctx context.Context, key string) (bool, error)
	// PushRecent prepends id to the list at listKey, trimming it to maxLen.
	PushRecent(ctx context.Context, listKey, id string, maxLen int) error
	// ListRecent returns up to limit ids from the list at listKey, newest first.
	ListRecent(ctx context.Context, listKey string, limit int) ([]string, error)
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
	// Close releases resources held by the store.
	Close()
}
