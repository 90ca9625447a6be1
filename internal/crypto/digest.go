package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Digest returns a short hex digest of b.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Digest(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:10])
}
