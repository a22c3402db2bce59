package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken covers bad signatures, malformed payloads, missing
// subjects and expired tokens alike; callers get no finer detail.
var ErrInvalidToken = errors.New("invalid token")

// Codec issues and validates self-contained HS256 session tokens.
// The signing secret is fixed at construction and never mutated, which
// also means a token cannot be revoked before its expiry.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// New builds a codec with the process-wide secret and session lifetime.
func New(secret string, ttl time.Duration) *Codec {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token with subject = userID expiring after the configured TTL.
func (c *Codec) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature and expiry and returns the embedded subject.
func (c *Codec) Verify(raw string) (string, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
