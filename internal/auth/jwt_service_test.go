package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "restromart/internal/errors"
	"restromart/internal/model"
)

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 0)
	userID := uuid.New()

	token, err := svc.Issue(userID, model.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_Issue_UniquePerCall(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 0)
	userID := uuid.New()

	// Back-to-back issuance lands in the same wall-clock second; the
	// token ID must still make each token distinct.
	first, err := svc.Issue(userID, model.RoleUser)
	assert.NoError(t, err)
	second, err := svc.Issue(userID, model.RoleUser)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	firstClaims, err := svc.Validate(first)
	assert.NoError(t, err)
	secondClaims, err := svc.Validate(second)
	assert.NoError(t, err)
	assert.NotEmpty(t, firstClaims.ID)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestJWTService_Validate_Failures(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 0)
	userID := uuid.New()

	valid, err := svc.Issue(userID, model.RoleUser)
	assert.NoError(t, err)

	expiredSvc := NewJWTService("test-secret", -time.Minute, 0)
	expired, err := expiredSvc.Issue(userID, model.RoleUser)
	assert.NoError(t, err)

	otherSecret := NewJWTService("other-secret", time.Hour, 0)
	foreign, err := otherSecret.Issue(userID, model.RoleUser)
	assert.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed token", token: "not.a.token"},
		{name: "empty token", token: ""},
		{name: "tampered token", token: valid + "x"},
		{name: "expired token", token: expired},
		{name: "wrong secret", token: foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Validate(tt.token)
			assert.Nil(t, claims)
			// Every failure mode collapses into the same error so callers
			// cannot tell malformed, expired, and tampered tokens apart.
			assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
		})
	}
}

func TestJWTService_Validate_Leeway(t *testing.T) {
	userID := uuid.New()

	// Token expired two seconds ago; a ten second leeway must accept it.
	issuer := NewJWTService("test-secret", -2*time.Second, 0)
	token, err := issuer.Issue(userID, model.RoleUser)
	assert.NoError(t, err)

	strict := NewJWTService("test-secret", time.Hour, 0)
	_, err = strict.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	lenient := NewJWTService("test-secret", time.Hour, 10*time.Second)
	claims, err := lenient.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_SecretRotationInvalidates(t *testing.T) {
	before := NewJWTService("old-secret", time.Hour, 0)
	token, err := before.Issue(uuid.New(), model.RoleAdmin)
	assert.NoError(t, err)

	after := NewJWTService("new-secret", time.Hour, 0)
	_, err = after.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}
