package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/common"
)

// TokenExpiry extracts the expiry from a bearer token without verifying its
// signature — the backend owns verification; the client only uses the claim
// to avoid a doomed identity check and to show "session expires" in the
// profile view. A token without an exp claim yields the zero time.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, common.ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}

// TokenSubject extracts the subject claim, the identifier the token was
// issued for. Empty when absent or the token is malformed.
func TokenSubject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
