package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewGenerator は各種設定でGeneratorが正しく生成されることを検証します。
func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		secret             string
		expiration         time.Duration
		expectedExpiration time.Duration
	}{
		{"standard config", "my-secret-key", time.Hour, time.Hour},
		{"long expiration", "secret", 24 * time.Hour * 30, 24 * time.Hour * 30},
		{"zero expiration uses default", "s", 0, DefaultExpiration},
		{"negative expiration uses default", "s", -time.Minute, DefaultExpiration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(tt.secret, tt.expiration)

			if gen == nil {
				t.Fatal("expected generator to be non-nil")
			}
			if string(gen.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(gen.secret))
			}
			if gen.expiration != tt.expectedExpiration {
				t.Errorf("expected expiration %v, got %v", tt.expectedExpiration, gen.expiration)
			}
		})
	}
}

// TestGenerator_GenerateToken は生成されたJWTトークンが有効で正しいクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
		email  string
	}{
		{"basic user", 1, "user@example.com"},
		{"user with special email", 42, "user+tag@example.com"},
		{"large user id", 999999, "test@test.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", time.Hour)
			tokenStr, err := gen.GenerateToken(tt.userID, tt.email)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var claims Claims
			token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
				return []byte("test-secret"), nil
			})
			if err != nil {
				t.Fatalf("failed to parse token: %v", err)
			}
			if !token.Valid {
				t.Error("expected token to be valid")
			}
			if token.Method.Alg() != "HS256" {
				t.Errorf("expected HS256, got %s", token.Method.Alg())
			}
			if claims.UserID != tt.userID {
				t.Errorf("expected uid %d, got %d", tt.userID, claims.UserID)
			}
			if claims.Email != tt.email {
				t.Errorf("expected email %q, got %q", tt.email, claims.Email)
			}
			if claims.ExpiresAt == nil || claims.IssuedAt == nil {
				t.Fatal("expected exp and iat claims to be set")
			}
		})
	}
}

// TestGenerator_GenerateToken_Expiration はexpクレームが発行時刻+有効期限になることを検証します。
func TestGenerator_GenerateToken_Expiration(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	gen := NewGenerator("test-secret", DefaultExpiration)
	gen.now = func() time.Time { return fixed }

	tokenStr, err := gen.GenerateToken(1, "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var claims Claims
	_, _, err = jwt.NewParser().ParseUnverified(tokenStr, &claims)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}

	if !claims.IssuedAt.Time.Equal(fixed) {
		t.Errorf("expected iat %v, got %v", fixed, claims.IssuedAt.Time)
	}
	if want := fixed.Add(7 * 24 * time.Hour); !claims.ExpiresAt.Time.Equal(want) {
		t.Errorf("expected exp %v, got %v", want, claims.ExpiresAt.Time)
	}
	if claims.Subject != "1" {
		t.Errorf("expected sub %q, got %q", "1", claims.Subject)
	}
}

// TestGenerator_GenerateToken_DifferentUsersProduceDifferentTokens は異なるユーザーに対して異なるトークンが生成されることを検証します。
func TestGenerator_GenerateToken_DifferentUsersProduceDifferentTokens(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)

	token1, _ := gen.GenerateToken(1, "user1@example.com")
	token2, _ := gen.GenerateToken(2, "user2@example.com")

	if token1 == token2 {
		t.Error("expected different tokens for different users")
	}
}
