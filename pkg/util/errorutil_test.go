package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorConstructors(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewValidationError("all fields are required"), "VALIDATION_FAILED", http.StatusBadRequest},
		{NewUnauthorized("invalid credentials"), "UNAUTHORIZED", http.StatusUnauthorized},
		{NewConflict("email already registered"), "CONFLICT", http.StatusConflict},
		{NewNotFound("account"), "NOT_FOUND", http.StatusNotFound},
		{NewInternalError(errors.New("pool closed")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, c := range cases {
		de := ToDomainError(c.err)
		require.NotNil(t, de)
		assert.Equal(t, c.code, de.Code)
		assert.Equal(t, c.status, de.HTTPStatus)
	}
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	cause := errors.New("connection refused")
	de := ToDomainError(cause)

	require.NotNil(t, de)
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	// client-facing message hides the cause, Unwrap keeps it for logs
	assert.Equal(t, "server error", de.Message)
	assert.ErrorIs(t, de, cause)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestToDomainErrorPassthrough(t *testing.T) {
	orig := NewConflict("email already registered")
	de := ToDomainError(orig)
	assert.Same(t, orig, de)
}
