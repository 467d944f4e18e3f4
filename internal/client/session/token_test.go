package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "asha@example.com", "exp": exp.Unix()})

	got, err := TokenExpiry(token)
	require.NoError(t, err)
	require.True(t, got.Equal(exp))
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "asha@example.com"})

	got, err := TokenExpiry(token)
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

func TestTokenExpiry_Malformed(t *testing.T) {
	_, err := TokenExpiry("not-a-token")
	require.Error(t, err)
}

func TestTokenSubject(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "asha@example.com"})
	require.Equal(t, "asha@example.com", TokenSubject(token))
	require.Empty(t, TokenSubject("garbage"))
}
