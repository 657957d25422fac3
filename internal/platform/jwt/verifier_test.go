package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_RoundTrip(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("round-trip-secret", time.Hour)
	tokenStr, err := gen.GenerateToken(7, "investor@example.com")
	require.NoError(t, err)

	userID, email, err := NewVerifier("round-trip-secret").Verify(tokenStr)

	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
	assert.Equal(t, "investor@example.com", email)
}

func TestVerifier_Failures(t *testing.T) {
	t.Parallel()

	const secret = "verifier-secret"

	expired := NewGenerator(secret, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.GenerateToken(1, "old@example.com")
	require.NoError(t, err)

	wrongSecret, err := NewGenerator("another-secret", time.Hour).GenerateToken(1, "x@example.com")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"uid": 1,
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noneToken, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"uid": 1, "sub": "1"})
	noExpToken, err := noExp.SignedString([]byte(secret))
	require.NoError(t, err)

	mismatched := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": 1,
		"sub": "2",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	mismatchedToken, err := mismatched.SignedString([]byte(secret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", ErrMissingToken},
		{"random string", "randomstring", ErrMalformedToken},
		{"malformed segments", "not.a.valid.token", ErrMalformedToken},
		{"expired", expiredToken, ErrExpiredToken},
		{"wrong secret", wrongSecret, ErrInvalidSignature},
		{"none algorithm", noneToken, ErrInvalidSignature},
		{"missing exp", noExpToken, ErrMalformedToken},
		{"subject mismatch", mismatchedToken, ErrMalformedToken},
	}

	v := NewVerifier(secret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			userID, email, err := v.Verify(tt.token)

			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, userID)
			assert.Empty(t, email)
		})
	}
}
