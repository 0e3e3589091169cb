package auth

import (
	"net/http"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "restromart/internal/errors"
	"restromart/internal/model"
	"restromart/internal/repository"
)

const identityKey = "auth_identity"

// Identity is the resolved caller attached to the request context after
// the bearer token and its subject have both checked out.
type Identity struct {
	UserID uuid.UUID
	Role   model.Role
}

// Middleware returns the two-stage bearer authentication chain: token
// verification (signature, expiry, Bearer prefix) followed by a store
// lookup of the subject. The lookup deliberately bypasses any cache so a
// deleted user's outstanding tokens die on their next request.
func Middleware(jwtService *JWTService, users repository.UserRepository) []echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.Validate(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// One response for missing header, malformed token, bad
			// signature, and expiry alike.
			return c.JSON(http.StatusUnauthorized, apperrors.Fail("Unauthorized!!"))
		},
	})
	return []echo.MiddlewareFunc{verify, resolveSubject(users)}
}

func resolveSubject(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*Claims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, apperrors.Fail("Unauthorized!!"))
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil || user == nil {
				return c.JSON(http.StatusUnauthorized, apperrors.Fail("Unauthorized!!"))
			}

			// Role comes from the store, not the token, so a role change
			// takes effect without waiting out the token's TTL.
			c.Set(identityKey, &Identity{UserID: user.ID, Role: user.Role})
			return next(c)
		}
	}
}

// IdentityFrom returns the authenticated caller attached by Middleware.
func IdentityFrom(c echo.Context) (*Identity, bool) {
	id, ok := c.Get(identityKey).(*Identity)
	return id, ok
}
