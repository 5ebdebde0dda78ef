package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenerateKey creates a cache key with prefix and ID.
func GenerateKey(prefix string, id string) string {
	return fmt.Sprintf("%s:%s", prefix, id)
}

// HashKey returns the hex SHA-256 of a key, for ids of unbounded length.
func HashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func wrapKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return GenerateKey(prefix, key)
}

func wrapKeys(prefix string, keys ...string) []string {
	wrapped := make([]string, len(keys))
	for i, key := range keys {
		wrapped[i] = wrapKey(prefix, key)
	}
	return wrapped
}
