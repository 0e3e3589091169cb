package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "restromart/internal/errors"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name          string
		plaintext     string
		expectedError error
	}{
		{
			name:      "valid password",
			plaintext: "Test@123",
		},
		{
			name:          "empty password",
			plaintext:     "",
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "oversized password",
			plaintext:     strings.Repeat("a", 73),
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:      "max length password",
			plaintext: strings.Repeat("a", 72),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.plaintext)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, hash)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hash)
				assert.NotEqual(t, tt.plaintext, hash)
				assert.True(t, CheckPassword(tt.plaintext, hash))
			}
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("Test@123")
	assert.NoError(t, err)
	second, err := HashPassword("Test@123")
	assert.NoError(t, err)

	// Per-call salt: same plaintext, different blobs, both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("Test@123", first))
	assert.True(t, CheckPassword("Test@123", second))
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("Test@123")
	assert.NoError(t, err)

	assert.False(t, CheckPassword("WrongPass", hash))
	assert.False(t, CheckPassword("", hash))
	assert.False(t, CheckPassword("Test@123", "not-a-hash"))
}
