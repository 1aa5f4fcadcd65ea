// Package cache stores solved puzzle answers between runs.
//
// Answers are keyed by day, part and a hash of the puzzle input, so editing
// an input file naturally invalidates its cached answers. The CLI uses a
// FileCache under the user cache directory; NullCache disables caching.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long answers stay cached when no TTL is configured.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// AnswerKey identifies the answer for one part of one day's input.
	AnswerKey(day, part int, inputHash string) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// AnswerKey returns "answer:<sha256 of the components>".
func (DefaultKeyer) AnswerKey(day, part int, inputHash string) string {
	return hashKey("answer", day, part, inputHash)
}
