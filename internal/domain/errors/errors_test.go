package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flyingpot/internal/errors"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrInsufficientStock.WithDetails("Soup")

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.NotErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, "Soup", err.Details())
	assert.Equal(t, ErrInsufficientStock.Message(), err.Message())
}

func TestBaseError_WrappedDetailsStillMatchSentinel(t *testing.T) {
	wrapped := errors.Wrap(ErrUserNotFound.WithDetails("follower@example.com"), "loading follower")

	assert.ErrorIs(t, wrapped, ErrUserNotFound)

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "follower@example.com", appErr.Details())
}

func TestBaseError_IsRejectsForeignErrors(t *testing.T) {
	assert.False(t, ErrEmptyCart.Is(errors.New("cart is empty")))
}
