package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restromart/internal/auth"
	"restromart/internal/cache"
	apperrors "restromart/internal/errors"
	"restromart/internal/model"
	"restromart/internal/policy"
	"restromart/internal/repository"
)

const (
	productListCacheKey = "products:all"
	productListCacheTTL = 5 * time.Minute
)

// ProductInput carries the writable fields of a product. Price and
// CalorieCount are pointers so an explicit zero in the request is
// distinguishable from an absent field on partial updates.
type ProductInput struct {
	Name         string
	SKU          string
	CategoryID   string
	Description  string
	Price        *decimal.Decimal
	CalorieCount *int
	Images       []string
}

// ProductService handles the product catalog. Reads are public; every
// write is admin-gated through the access policy.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Create(ctx context.Context, identity *auth.Identity, input ProductInput) (*model.Product, error)
	Update(ctx context.Context, identity *auth.Identity, id uuid.UUID, input ProductInput) (*model.Product, error)
	Delete(ctx context.Context, identity *auth.Identity, id uuid.UUID) error
}

type productService struct {
	repo  repository.ProductRepository
	cache *cache.Client
}

// NewProductService builds a ProductService with repository and cache.
func NewProductService(repo repository.ProductRepository, cache *cache.Client) ProductService {
	return &productService{repo: repo, cache: cache}
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	if data, _ := s.cache.Get(ctx, productListCacheKey); data != nil {
		var cached []model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, productListCacheKey, payload, productListCacheTTL)
	}
	return products, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) Create(ctx context.Context, identity *auth.Identity, input ProductInput) (*model.Product, error) {
	if err := policy.Authorize(identity, policy.ActionCreateProduct, uuid.Nil); err != nil {
		return nil, err
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        input.Name,
		SKU:         input.SKU,
		CategoryID:  input.CategoryID,
		Description: input.Description,
		Images:      model.ImageList(input.Images),
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.CalorieCount != nil {
		product.CalorieCount = uint(*input.CalorieCount)
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, productListCacheKey)
	return product, nil
}

// Update applies only the fields present in input: empty strings and nil
// pointers leave the stored field untouched, so an explicit zero price or
// calorie count is still settable.
func (s *productService) Update(ctx context.Context, identity *auth.Identity, id uuid.UUID, input ProductInput) (*model.Product, error) {
	if err := policy.Authorize(identity, policy.ActionUpdateProduct, uuid.Nil); err != nil {
		return nil, err
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.SKU != "" {
		product.SKU = input.SKU
	}
	if input.CategoryID != "" {
		product.CategoryID = input.CategoryID
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperrors.ErrInvalidInput
		}
		product.Price = *input.Price
	}
	if input.CalorieCount != nil {
		if *input.CalorieCount < 0 {
			return nil, apperrors.ErrInvalidInput
		}
		product.CalorieCount = uint(*input.CalorieCount)
	}
	if input.Images != nil {
		product.Images = model.ImageList(input.Images)
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, productListCacheKey)
	return product, nil
}

func (s *productService) Delete(ctx context.Context, identity *auth.Identity, id uuid.UUID) error {
	if err := policy.Authorize(identity, policy.ActionDeleteProduct, uuid.Nil); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, productListCacheKey)
	return nil
}

func validateProductInput(input ProductInput) error {
	if input.Name == "" || input.SKU == "" {
		return apperrors.ErrInvalidInput
	}
	if input.Price != nil && input.Price.IsNegative() {
		return apperrors.ErrInvalidInput
	}
	if input.CalorieCount != nil && *input.CalorieCount < 0 {
		return apperrors.ErrInvalidInput
	}
	return nil
}
