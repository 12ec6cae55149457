// Package auth issues and validates the guest tokens the websocket server
// hands out. There are no accounts; a token just binds a connection to its
// session key so a dropped player can resume their game.
package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GuestClaims are the claims embedded in a guest token.
type GuestClaims struct {
	// Name is the guest's display name, informational only.
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// TokenIssuer issues and validates HS256 guest tokens.
type TokenIssuer struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenIssuer builds an issuer signing with secret. Tokens expire after
// lifetime.
func NewTokenIssuer(secret []byte, lifetime time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, lifetime: lifetime}
}

// Issue creates a token for a guest. The subject doubles as the session
// store key.
func (t *TokenIssuer) Issue(sessionKey, name string) (string, error) {
	now := time.Now()
	claims := GuestClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionKey,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign guest token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token string.
func (t *TokenIssuer) Validate(tokenString string) (*GuestClaims, error) {
	claims := &GuestClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse guest token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid guest token")
	}
	return claims, nil
}

// FromRequest extracts claims from the Authorization header or, for
// websocket upgrades where headers are awkward, a token query parameter.
func (t *TokenIssuer) FromRequest(r *http.Request) (*GuestClaims, error) {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return t.Validate(strings.TrimPrefix(header, "Bearer "))
	}
	if token := r.URL.Query().Get("token"); token != "" {
		return t.Validate(token)
	}
	return nil, fmt.Errorf("no guest token in request")
}

// Middleware rejects requests without a valid guest token and stores the
// claims on the request context.
func (t *TokenIssuer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := t.FromRequest(r)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}
