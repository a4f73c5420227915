package model

import "time"

// Session represents a logged-in browser session. The token is an opaque
// random value; a session is valid iff its row exists, is unexpired, and its
// owning user is active.
type Session struct {
	ID        int       `json:"id"`
	Token     string    `json:"-"`
	UserID    int       `json:"user_id"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session's absolute expiry has passed.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
