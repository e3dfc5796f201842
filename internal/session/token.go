// Package session identifies browser sessions with a signed cookie and
// queues flash messages per session until the next rendered page.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "session"

// ContextKey is the echo context key holding the current session id.
const ContextKey = "session_id"

// ErrInvalidToken is returned for tokens that fail signature or claim checks.
var ErrInvalidToken = errors.New("invalid session token")

// Token is a signed session token with its expiry.
type Token struct {
	SID   string
	Value string
	Exp   time.Time
}

// NewID returns a fresh random session id.
func NewID() string { return uuid.NewString() }

// NewToken builds and signs an HS256 JWT carrying the session id (sid),
// issued-at and expiry claims.
func NewToken(secret, sid string, ttl time.Duration) (Token, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return Token{}, fmt.Errorf("sign session token: %w", err)
	}
	return Token{SID: sid, Value: signed, Exp: exp}, nil
}

// ParseToken validates raw and returns its session id.
func ParseToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sid, _ := claims["sid"].(string)
	if _, err := uuid.Parse(sid); err != nil {
		return "", ErrInvalidToken
	}
	return sid, nil
}
