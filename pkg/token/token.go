package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired reports whether the bearer token carries an exp claim in the past.
// The token is issued and verified by the backend; the dashboard never holds
// the signing key, so the claims are decoded without verification and only
// used to fail fast. Opaque or unparsable tokens report false and stay for
// the backend to judge.
func Expired(tokenString string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
