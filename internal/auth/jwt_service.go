package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "restromart/internal/errors"
	"restromart/internal/model"
)

// Claims represents JWT claims carried by every bearer token.
type Claims struct {
	UserID uuid.UUID  `json:"user_id"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation. Tokens are
// stateless: nothing is persisted server-side and rotating the secret
// invalidates every outstanding token.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	leeway time.Duration
}

// NewJWTService creates a new JWT service with the given secret, token
// lifetime, and clock-skew leeway.
func NewJWTService(secret string, ttl, leeway time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		leeway: leeway,
	}
}

// Issue generates a signed token encoding the user's identity and role.
func (s *JWTService) Issue(userID uuid.UUID, role model.Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			// Unique per token: iat/exp have second granularity, so two
			// logins in the same second would otherwise sign identically.
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the claims.
// Malformed structure, bad signature, and expiry are all surfaced as the
// same ErrUnauthenticated so callers cannot probe token internals.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrUnauthenticated
		}
		return s.secret, nil
	}, jwt.WithLeeway(s.leeway), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrUnauthenticated
	}
	if !claims.Role.Valid() || claims.UserID == uuid.Nil {
		return nil, apperrors.ErrUnauthenticated
	}

	return claims, nil
}
