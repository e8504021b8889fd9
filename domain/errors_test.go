package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	err := NewValidationError("tree1 cannot be empty")
	assert.Equal(t, "[INVALID_INPUT] tree1 cannot be empty", err.Error())

	cause := errors.New("unexpected token")
	err = NewFormatError("malformed bracketed tree", cause)
	assert.Equal(t, "[FORMAT_ERROR] malformed bracketed tree: unexpected token", err.Error())
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("no such file")
	err := NewFileNotFoundError("/tmp/missing.trees", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/tmp/missing.trees")
}

func TestErrorCodePredicates(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("bad")))
	assert.False(t, IsValidationError(NewFormatError("bad", nil)))

	assert.True(t, IsFormatError(NewFormatError("bad", nil)))
	assert.False(t, IsFormatError(NewValidationError("bad")))

	assert.False(t, IsFormatError(errors.New("plain")))
	assert.False(t, IsFormatError(nil))
}

func TestErrorCodePredicates_Wrapped(t *testing.T) {
	// Codes survive fmt.Errorf wrapping.
	inner := NewFormatError("malformed bracketed tree", nil)
	wrapped := fmt.Errorf("line 3: %w", inner)
	assert.True(t, IsFormatError(wrapped))
}
