package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"restromart/internal/auth"
	apperrors "restromart/internal/errors"
	"restromart/internal/service"
)

// ProductHandler handles product catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductRequest represents a product create or update payload. On update
// every field is optional; absent fields keep their stored value.
type ProductRequest struct {
	Name         string   `json:"name"`
	SKU          string   `json:"sku"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price"`
	CalorieCount *int     `json:"calorie_count"`
	Images       []string `json:"images"`
}

func (r *ProductRequest) toInput() service.ProductInput {
	input := service.ProductInput{
		Name:         r.Name,
		SKU:          r.SKU,
		CategoryID:   r.Category,
		Description:  r.Description,
		CalorieCount: r.CalorieCount,
		Images:       r.Images,
	}
	if r.Price != nil {
		price := decimal.NewFromFloat(*r.Price)
		input.Price = &price
	}
	return input
}

// ListProducts godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {object} errors.Envelope
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apperrors.OK(products))
}

// GetProduct godoc
// @Summary Get a product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("invalid product id"))
	}

	product, err := h.productService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apperrors.OK(product))
}

// CreateProduct godoc
// @Summary Create a product (admin only)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductRequest true "Product data"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Failure 409 {object} errors.Envelope
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("invalid request body"))
	}

	identity, _ := auth.IdentityFrom(c)
	product, err := h.productService.Create(c.Request().Context(), identity, req.toInput())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.OK(product))
}

// UpdateProduct godoc
// @Summary Update a product (admin only)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body ProductRequest true "Fields to update"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("invalid product id"))
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("invalid request body"))
	}

	identity, _ := auth.IdentityFrom(c)
	product, err := h.productService.Update(c.Request().Context(), identity, id, req.toInput())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.OK(product))
}

// DeleteProduct godoc
// @Summary Delete a product (admin only)
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("invalid product id"))
	}

	identity, _ := auth.IdentityFrom(c)
	if err := h.productService.Delete(c.Request().Context(), identity, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.OK(nil))
}
