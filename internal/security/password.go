package security

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the lower-case hex SHA-256 digest of the UTF-8
// plaintext. Stored hashes use exactly this encoding; changing it would
// invalidate every existing record.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
