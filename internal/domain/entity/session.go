package entity

import "time"

// Session is the authenticated state of the console operator.
type Session struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	User         *User     `json:"user"`
	ExpiresAt    time.Time `json:"expiresAt,omitzero"`
}

// Expired reports whether the session token carries an expiry in the past.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
