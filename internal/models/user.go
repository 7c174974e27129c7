package models

import "time"

// User is a registered principal. The credential hash is opaque to the
// server: clients hash before sending and the stored value is only ever
// compared byte-exact, never interpreted.
type User struct {
	ID             string
	Username       string
	CredentialHash string
	CreatedAt      time.Time
}

// Session is a time-bounded proof of authentication. A session is live
// while the current time is strictly before ExpiresAt; at or past that
// instant it is expired, and nothing ever moves it back.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// AuthenticatedUser is the view returned after login, registration, or
// session validation. Never persisted.
type AuthenticatedUser struct {
	Username  string `json:"username"`
	SessionID string `json:"sessionId"`
}
