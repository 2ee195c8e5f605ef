// Package hashing provides the one-way digest used for password storage.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher turns a plaintext into a deterministic digest string.
type Hasher interface {
	Hash(text string) string
}

// SHA256 hashes to a lowercase hex sha-256 digest.
type SHA256 struct{}

func (SHA256) Hash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
