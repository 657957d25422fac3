// Package jwtmw issues and verifies the HS256 bearer tokens used by the API
// and provides the gin middleware that guards protected routes.
package jwtmw

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiration is the lifetime of an issued token.
const DefaultExpiration = 7 * 24 * time.Hour

// Claims is the payload carried by every token.
type Claims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// generator signs tokens with a shared secret.
type generator struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator creates a token generator. A non-positive expiration falls back to DefaultExpiration.
func NewGenerator(secret string, expiration time.Duration) *generator {
	if expiration <= 0 {
		expiration = DefaultExpiration
	}
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// GenerateToken creates a signed token asserting userID and email.
func (g *generator) GenerateToken(userID uint, email string) (string, error) {
	now := g.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
