// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"portal/internal/domain/service"
	"portal/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtInspector reads claims from backend-issued JWTs without verifying them.
// The signing secret belongs to the backend; the console only needs the expiry
// to avoid restoring a session the backend will reject anyway.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector is the constructor for the JWT-based TokenInspector.
func NewTokenInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// Inspect decodes the token claims.
func (i *jwtInspector) Inspect(token string) (*service.TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	out := &service.TokenClaims{}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "read subject")
	}
	out.Subject = subject

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(err, "read expiry")
	}
	if exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}
