package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("Error returns formatted string", func(t *testing.T) {
		err := New(ErrCodeSessionNotFound, "session not found: abc")
		assert.Equal(t, "SESSION_NOT_FOUND: session not found: abc", err.Error())
	})

	t.Run("Error with cause includes cause", func(t *testing.T) {
		cause := errors.New("cipher: message authentication failed")
		err := Wrap(ErrCodeDecryptionFailed, "unable to decrypt payload", cause)
		assert.Contains(t, err.Error(), "DECRYPTION_FAILED")
		assert.Contains(t, err.Error(), "unable to decrypt payload")
		assert.Contains(t, err.Error(), "message authentication failed")
	})

	t.Run("WithCause adds cause to error", func(t *testing.T) {
		cause := errors.New("original error")
		err := New(ErrCodeInternal, "something went wrong").WithCause(cause)
		assert.Equal(t, cause, err.Unwrap())
	})

	t.Run("WithDetails adds details to error", func(t *testing.T) {
		details := map[string]string{"field": "urgencyLevel", "reason": "unknown value"}
		err := New(ErrCodeValidation, "validation failed").WithDetails(details)
		assert.Equal(t, details, err.Details)
	})
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		constructor  func() *AppError
		expectedCode ErrorCode
	}{
		{"SessionNotFound", func() *AppError { return SessionNotFound("abc") }, ErrCodeSessionNotFound},
		{"BlobNotFound", func() *AppError { return BlobNotFound("h1") }, ErrCodeBlobNotFound},
		{"DecryptionFailed", func() *AppError { return DecryptionFailed(errors.New("bad token")) }, ErrCodeDecryptionFailed},
		{"OrganizationNotFound", func() *AppError { return OrganizationNotFound("org_1") }, ErrCodeOrganizationNotFound},
		{"ValidationError", func() *AppError { return ValidationError("test") }, ErrCodeValidation},
		{"InvalidInput", func() *AppError { return InvalidInput("latitude", "out of range") }, ErrCodeInvalidInput},
		{"Internal", func() *AppError { return Internal("test") }, ErrCodeInternal},
		{"Storage", func() *AppError { return Storage(errors.New("disk full")) }, ErrCodeStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constructor()
			assert.Equal(t, tt.expectedCode, err.Code)
		})
	}
}

func TestHelpers(t *testing.T) {
	t.Run("IsAppError detects AppError", func(t *testing.T) {
		assert.True(t, IsAppError(SessionNotFound("abc")))
		assert.False(t, IsAppError(errors.New("plain")))
	})

	t.Run("IsAppError detects wrapped AppError", func(t *testing.T) {
		wrapped := fmt.Errorf("load session: %w", SessionNotFound("abc"))
		assert.True(t, IsAppError(wrapped))
	})

	t.Run("GetCode returns code for AppError", func(t *testing.T) {
		assert.Equal(t, ErrCodeSessionNotFound, GetCode(SessionNotFound("abc")))
	})

	t.Run("GetCode returns internal for plain error", func(t *testing.T) {
		assert.Equal(t, ErrCodeInternal, GetCode(errors.New("plain")))
	})

	t.Run("IsCode matches wrapped errors", func(t *testing.T) {
		wrapped := fmt.Errorf("sweep: %w", DecryptionFailed(errors.New("corrupt")))
		assert.True(t, IsCode(wrapped, ErrCodeDecryptionFailed))
		assert.False(t, IsCode(wrapped, ErrCodeSessionNotFound))
	})
}
