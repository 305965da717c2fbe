package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "required field",
			field:    "name",
			message:  "is required",
			expected: "validation error on field 'name': is required",
		},
		{
			name:     "unit outside the set",
			field:    "default_unit",
			message:  "must be one of the known units",
			expected: "validation error on field 'default_unit': must be one of the known units",
		},
		{
			name:     "empty message",
			field:    "email",
			message:  "",
			expected: "validation error on field 'email': ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestIsValidationError(t *testing.T) {
	base := &ValidationError{Field: "name", Message: "is required"}

	assert.True(t, IsValidationError(base))
	assert.True(t, IsValidationError(fmt.Errorf("create article name: %w", base)))
	assert.False(t, IsValidationError(ErrNotFound))
	assert.False(t, IsValidationError(nil))
}

func TestSentinelErrors_Uniqueness(t *testing.T) {
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
	assert.False(t, errors.Is(ErrInvalidUnit, ErrInvalidInput))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidUnit))
}
