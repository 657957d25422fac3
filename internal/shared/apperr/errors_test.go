package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	cause := errors.New("duplicate key")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("name is required"), KindValidation},
		{"conflict", Conflict("fund already saved", cause), KindConflict},
		{"auth", Auth("invalid token", cause), KindAuth},
		{"not found", NotFound("saved fund not found", nil), KindNotFound},
		{"upstream", Upstream("fund data unavailable", cause), KindUpstream},
		{"wrapped", fmt.Errorf("save: %w", Conflict("fund already saved", cause)), KindConflict},
		{"plain error", cause, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_UnwrapKeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("token is expired")
	err := Auth("invalid token", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "invalid token: token is expired", err.Error())
}

func TestPublicMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fund already saved", PublicMessage(Conflict("fund already saved", errors.New("UNIQUE constraint failed"))))
	assert.Equal(t, "internal server error", PublicMessage(Internal(errors.New("connection refused"))))
	assert.Equal(t, "internal server error", PublicMessage(errors.New("raw driver error")))
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "conflict", KindConflict.String())
	assert.Equal(t, "unauthorized", KindAuth.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "upstream", KindUpstream.String())
	assert.Equal(t, "internal", KindInternal.String())
	assert.True(t, Is(NotFound("x", nil), KindNotFound))
	assert.False(t, Is(nil, KindInternal))
}
