package utils // package utils provides helper functions for session tokens and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrInvalidToken is returned by ParseSessionToken for any token whose
// signature, algorithm or claims cannot be verified.  Handlers translate
// it into a clean HTTP 401 rather than letting the request die.
var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims carries the authenticated subject decoded from a session
// token: the user's object id (hex) and the email it was issued for.
type SessionClaims struct {
	UserID string // subject (sub) claim, user object id in hex
	Email  string // email claim
}

// NewSessionToken builds and signs an HS256 JWT identifying the given
// user.  The token carries only the subject id, the email and an issued-at
// timestamp.  There is deliberately no exp claim: a session stays valid
// until the signing secret rotates, matching the cookie-session contract
// of this service.
func NewSessionToken(secret, userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseSessionToken verifies raw against the secret and returns its
// claims.  Tokens signed with a non-HMAC algorithm, tokens with a bad
// signature and tokens missing either claim all yield ErrInvalidToken.
func ParseSessionToken(secret, raw string) (SessionClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject any algorithm other than the HMAC family we sign with.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return SessionClaims{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" || email == "" {
		return SessionClaims{}, ErrInvalidToken
	}
	return SessionClaims{UserID: sub, Email: email}, nil
}
