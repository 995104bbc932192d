package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/token"
)

// signedToken builds a JWT with the given expiry. The signing key is
// irrelevant; claims are read without verification.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "someone", "exp": exp.Unix()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-key"))
	require.NoError(t, err)
	return tok
}

func TestExpired_PastExpClaim(t *testing.T) {
	now := time.Now()
	tok := signedToken(t, now.Add(-time.Minute))

	assert.True(t, token.Expired(tok, now), "token expired a minute ago must report expired")
}

func TestExpired_FutureExpClaim(t *testing.T) {
	now := time.Now()
	tok := signedToken(t, now.Add(time.Hour))

	assert.False(t, token.Expired(tok, now))
}

func TestExpired_NoExpClaim(t *testing.T) {
	claims := jwt.MapClaims{"sub": "someone"}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-key"))
	require.NoError(t, err)

	assert.False(t, token.Expired(tok, time.Now()), "a token without exp stays for the backend to judge")
}

func TestExpired_OpaqueToken(t *testing.T) {
	assert.False(t, token.Expired("not-a-jwt-at-all", time.Now()))
	assert.False(t, token.Expired("", time.Now()))
}
