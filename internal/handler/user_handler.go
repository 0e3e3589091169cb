package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"restromart/internal/auth"
	apperrors "restromart/internal/errors"
	"restromart/internal/service"
)

// UserHandler handles user registration, login, and management endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	MobileNo string `json:"mobile_no"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents a self profile update. Role and password
// are not accepted on this path.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	MobileNo string `json:"mobile_no"`
}

// ChangePasswordRequest represents a password change request.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldpassword" validate:"required"`
	NewPassword string `json:"newpassword" validate:"required,min=6"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 409 {object} errors.Envelope
// @Router /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail(err.Error()))
	}

	user, err := h.userService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.MobileNo)
	if err != nil {
		if err == apperrors.ErrConflict {
			return c.JSON(http.StatusConflict, apperrors.Fail("User Already Exists!!"))
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.OK(user))
}

// Login godoc
// @Summary Login with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail(err.Error()))
	}

	result, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.OK(result))
}

// ListUsers godoc
// @Summary List all users (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Router /users/all [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	identity, _ := auth.IdentityFrom(c)
	users, err := h.userService.ListUsers(c.Request().Context(), identity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apperrors.OK(users))
}

// MyProfile godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /users/my-profile [get]
func (h *UserHandler) MyProfile(c echo.Context) error {
	identity, _ := auth.IdentityFrom(c)
	user, err := h.userService.GetProfile(c.Request().Context(), identity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apperrors.OK(user))
}

// UpdateProfile godoc
// @Summary Update own profile (name, mobile)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Router /users/update-profile/{id} [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("invalid user id"))
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("invalid request body"))
	}

	identity, _ := auth.IdentityFrom(c)
	user, err := h.userService.UpdateProfile(c.Request().Context(), identity, targetID, service.ProfileUpdate{
		Name:     req.Name,
		MobileNo: req.MobileNo,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.OK(user))
}

// ChangePassword godoc
// @Summary Change own password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Old and new password"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /users/change-password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail(err.Error()))
	}

	identity, _ := auth.IdentityFrom(c)
	if err := h.userService.ChangePassword(c.Request().Context(), identity, req.OldPassword, req.NewPassword); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.OK(nil))
}

// DeleteUser godoc
// @Summary Delete a user (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /users/delete-user/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("invalid user id"))
	}

	identity, _ := auth.IdentityFrom(c)
	if err := h.userService.DeleteUser(c.Request().Context(), identity, targetID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.OK(nil))
}
