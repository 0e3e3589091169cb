package auth

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "restromart/internal/errors"
)

const bcryptCost = 10

// maxPasswordLen is bcrypt's input limit; longer passwords would be
// silently truncated by the primitive, so reject them up front.
const maxPasswordLen = 72

// HashPassword derives a salted one-way hash from plaintext. The returned
// blob embeds algorithm parameters and salt, so two calls on the same
// plaintext produce different blobs that both verify.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" || len(plaintext) > maxPasswordLen {
		return "", apperrors.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
// Comparison timing does not depend on where a mismatch occurs.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
