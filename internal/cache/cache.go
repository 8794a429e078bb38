// Package cache provides memory, disk and layered caches used to avoid
// re-querying the grammar service for clause text already seen during a
// batch run.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from clause text
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "clausescreen:v1:" + hex.EncodeToString(hash[:])
}
