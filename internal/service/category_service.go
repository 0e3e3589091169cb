package service

import (
	"context"

	"github.com/google/uuid"

	"restromart/internal/auth"
	apperrors "restromart/internal/errors"
	"restromart/internal/model"
	"restromart/internal/policy"
	"restromart/internal/repository"
)

// CategoryService handles the category list backing product references.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, identity *auth.Identity, name string) (*model.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService builds a CategoryService.
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) Create(ctx context.Context, identity *auth.Identity, name string) (*model.Category, error) {
	if err := policy.Authorize(identity, policy.ActionCreateCategory, uuid.Nil); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperrors.ErrInvalidInput
	}

	category := &model.Category{Name: name}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
