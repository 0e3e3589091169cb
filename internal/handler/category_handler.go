package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"restromart/internal/auth"
	apperrors "restromart/internal/errors"
	"restromart/internal/service"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents a category creation payload.
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListCategories godoc
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {object} errors.Envelope
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apperrors.OK(categories))
}

// CreateCategory godoc
// @Summary Create a category (admin only)
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category data"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Failure 409 {object} errors.Envelope
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail(err.Error()))
	}

	identity, _ := auth.IdentityFrom(c)
	category, err := h.categoryService.Create(c.Request().Context(), identity, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.OK(category))
}
