package security

import "github.com/google/uuid"

// NewSessionToken mints an opaque session identifier. The token carries
// no claims; validity always comes from the stored session row.
func NewSessionToken() string {
	return uuid.NewString()
}
