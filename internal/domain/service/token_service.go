package service

import "time"

// TokenClaims are the claims the console reads from a session token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time // Zero when the token carries no expiry.
}

// TokenInspector reads claims from tokens issued by the backend.
// The console cannot verify the signature; it only needs the expiry.
type TokenInspector interface {
	Inspect(token string) (*TokenClaims, error)
}
