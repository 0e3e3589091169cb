// Package policy holds the pure authorization decision function. It never
// touches the store: callers resolve identity and target first, then ask.
package policy

import (
	"github.com/google/uuid"

	"restromart/internal/auth"
	apperrors "restromart/internal/errors"
	"restromart/internal/model"
)

// Action enumerates every operation that requires an authorization decision.
// Register, login, and product/category reads are public routes and never
// reach the policy.
type Action int

const (
	ActionListUsers Action = iota
	ActionGetProfile
	ActionUpdateProfile
	ActionChangePassword
	ActionDeleteUser
	ActionCreateProduct
	ActionUpdateProduct
	ActionDeleteProduct
	ActionCreateCategory
)

// selfOnly actions require the identity to own the target user record.
// Every other action is admin-only: list users, delete user (any user,
// including another admin or the caller itself — no last-admin guard),
// and all product/category writes.
func (a Action) selfOnly() bool {
	switch a {
	case ActionGetProfile, ActionUpdateProfile, ActionChangePassword:
		return true
	}
	return false
}

// Authorize decides whether identity may perform action against the user
// record identified by targetUserID (uuid.Nil when the action has no user
// target). A nil identity is unauthenticated, not merely forbidden.
func Authorize(identity *auth.Identity, action Action, targetUserID uuid.UUID) error {
	if identity == nil {
		return apperrors.ErrUnauthenticated
	}

	switch identity.Role {
	case model.RoleAdmin:
		// Self-only actions still bind admins to their own record; admin
		// rights do not grant walking another user's profile paths.
		if action.selfOnly() && identity.UserID != targetUserID {
			return apperrors.ErrForbidden
		}
		return nil
	case model.RoleUser:
		if action.selfOnly() {
			if identity.UserID != targetUserID {
				return apperrors.ErrForbidden
			}
			return nil
		}
		return apperrors.ErrForbidden
	}

	// Unknown role: deny.
	return apperrors.ErrForbidden
}
