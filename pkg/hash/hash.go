// Package hash implements the digest conventions the SponsorBlock service
// uses for privacy-preserving video lookups and user identifiers.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// UserIDIterations is how many times a local user ID is hashed to produce
// the public user ID. Fixed by the service.
const UserIDIterations = 5000

// SHA256Hex returns the hex-encoded SHA256 digest of input.
func SHA256Hex(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// VideoHashPrefix returns the first prefixLen characters of
// SHA256Hex(videoID), the k-anonymity prefix sent instead of the video ID
// in privacy-preserving lookups. Asking for more characters than the
// digest has yields the full digest.
func VideoHashPrefix(videoID string, prefixLen int) string {
	full := SHA256Hex(videoID)
	if prefixLen > len(full) {
		return full
	}
	return full[:prefixLen]
}

// IteratedSHA256 applies SHA256 to input n times, feeding each digest's raw
// bytes (not its hex form) back in, and hex-encodes the final digest.
func IteratedSHA256(input string, iterations int) string {
	data := []byte(input)
	for i := 0; i < iterations; i++ {
		sum := sha256.Sum256(data)
		data = sum[:]
	}
	return hex.EncodeToString(data)
}

// HashUserID derives the public user ID from a local (private) user ID,
// the same way the service and the official extension do.
func HashUserID(localUserID string) string {
	return IteratedSHA256(localUserID, UserIDIterations)
}
