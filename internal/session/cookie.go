package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the browser cookie carrying the signed session ID.
const CookieName = "admin_session"

type cookieClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// EncodeCookie signs a session ID into a compact HS256 JWT for the cookie
// value.
func EncodeCookie(secret, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, cookieClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign session cookie: %w", err)
	}
	return signed, nil
}

// DecodeCookie verifies a cookie value and returns the session ID it carries.
func DecodeCookie(secret, value string) (string, error) {
	var claims cookieClaims
	token, err := jwt.ParseWithClaims(value, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("parse session cookie: %w", err)
	}
	if !token.Valid || claims.SessionID == "" {
		return "", errors.New("invalid session cookie")
	}
	return claims.SessionID, nil
}
