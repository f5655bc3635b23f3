package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores raw search output keyed by exact query text
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for a search query. Hashing keeps keys
// filesystem-safe for the disk layer and avoids leaking query text into
// file names.
func Key(query string) string {
	sum := sha256.Sum256([]byte(query))
	return "trustsignal:v1:" + hex.EncodeToString(sum[:])
}
