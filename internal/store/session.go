package store

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired reports whether tok is a JWT whose exp claim is in the past.
// The client holds no signing key, so the parse is unverified: the check
// only prevents restoring a session the server is guaranteed to reject.
// Tokens that do not parse as JWTs are treated as opaque and pass; tokens
// without an exp claim never expire locally.
func tokenExpired(tok string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
