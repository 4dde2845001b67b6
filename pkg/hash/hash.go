// Package hash provides ready-made message-hash capabilities for signing.
// Any func([]byte) []byte with a fixed output length works equally well.
package hash

import (
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// Blake3 digests the message with BLAKE3-256.
func Blake3(message []byte) []byte {
	out := blake3.Sum256(message)
	return out[:]
}

// SHA3 digests the message with SHA3-256.
func SHA3(message []byte) []byte {
	out := sha3.Sum256(message)
	return out[:]
}
