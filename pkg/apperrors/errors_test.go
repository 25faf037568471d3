package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindInvalidCredentials, KindOf(InvalidCredentials("invalid email or password")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("storage down")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("login: %w", TokenExpired("token expired"))
	assert.Equal(t, KindTokenExpired, KindOf(err))
	assert.True(t, IsKind(err, KindTokenExpired))
	assert.False(t, IsKind(err, KindInvalidToken))
}

func TestIs_MatchesByKind(t *testing.T) {
	assert.True(t, errors.Is(Unauthorized("cannot delete yourself"), Unauthorized("")))
	assert.False(t, errors.Is(Unauthorized("nope"), UserNotFound("")))
}
