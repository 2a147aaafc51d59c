package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AuthToken represents a signed JWT auth token along with its expiry. The
// Token field contains the serialized JWT string. Exp stores the UTC
// expiration time. A token is issued on registration and on every login;
// logins additionally persist it on the user row so it can serve as a
// lookup key.
type AuthToken struct {
	Token string
	Exp   time.Time
}

// ErrInvalidToken is returned by ParseAuthToken for tokens that fail
// signature verification, carry an unexpected signing method, have expired,
// or do not contain the expected identity claim.
var ErrInvalidToken = errors.New("invalid token")

// NewAuthToken builds and signs an HS256 JWT for a user. The identity claim
// is `id` carrying the username, matching what clients of this API decode.
// ttlSeconds controls the embedded expiry (86400 by default, set in config).
func NewAuthToken(secret, username string, ttlSeconds int) (AuthToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlSeconds) * time.Second)
	claims := jwt.MapClaims{
		"id":  username,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AuthToken{}, err
	}
	return AuthToken{Token: signed, Exp: exp}, nil
}

// ParseAuthToken verifies a token's signature and expiry and returns the
// username embedded in the `id` claim. Expired tokens are rejected by the
// parser's default claim validation.
func ParseAuthToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	username, ok := claims["id"].(string)
	if !ok || username == "" {
		return "", ErrInvalidToken
	}
	return username, nil
}
