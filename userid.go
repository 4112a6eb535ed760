package sponsorblock

import "crypto/rand"

// Local user IDs are 36 random alphanumerics, matching what the official
// browser extension generates.
const (
	localUserIDLength  = 36
	localUserIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateLocalUserID returns a fresh local (private) user ID.
//
// Do not call this on every startup. Generate one ID per user, store it,
// and treat it like a password: the service identifies users by the hash
// of this value (see Client.PublicUserID), so losing or leaking it means
// losing or leaking the account.
func GenerateLocalUserID() string {
	buf := make([]byte, localUserIDLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand is documented never to fail on supported platforms.
		panic(err)
	}
	for i, b := range buf {
		buf[i] = localUserIDCharset[int(b)%len(localUserIDCharset)]
	}
	return string(buf)
}
