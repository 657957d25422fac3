package jwtmw

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures. Callers outside this package should treat all of
// them the same way: the client has to authenticate again.
var (
	ErrMissingToken     = errors.New("missing token")
	ErrMalformedToken   = errors.New("malformed token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// verifier checks signature and expiry of tokens produced by a generator
// sharing the same secret. It never performs I/O.
type verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier creates a verifier for the given secret. Only HS256 is accepted.
func NewVerifier(secret string) *verifier {
	return &verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Verify parses tokenStr and returns the embedded user id and email.
func (v *verifier) Verify(tokenStr string) (uint, string, error) {
	if tokenStr == "" {
		return 0, "", ErrMissingToken
	}

	var claims Claims
	token, err := v.parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return 0, "", classify(err)
	}
	if !token.Valid {
		return 0, "", ErrMalformedToken
	}

	// sub and uid must agree; a token missing either is not one of ours.
	sub, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || claims.UserID == 0 || uint(sub) != claims.UserID {
		return 0, "", ErrMalformedToken
	}

	return claims.UserID, claims.Email, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpiredToken, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
}
