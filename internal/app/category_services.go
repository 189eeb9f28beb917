package app

import (
	"context"
	"fmt"

	"github.com/bangazon/bangazon-api/internal/domain/categories"
	"github.com/bangazon/bangazon-api/internal/pkg/logger"
)

// categoryService implements the CategoryService interface for reading categories
type categoryService struct {
	categoryRepo categories.CategoryRepository
	logger       logger.Logger
}

// NewCategoryService creates a new categoryService instance
func NewCategoryService(categoryRepo categories.CategoryRepository, logger logger.Logger) (categories.CategoryService, error) {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}, nil
}

// List retrieves all categories.
func (s *categoryService) List(ctx context.Context) ([]*categories.Category, error) {
	categoryList, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return categoryList, nil
}

// GetByID retrieves a category by its ID.
func (s *categoryService) GetByID(ctx context.Context, categoryID uint) (*categories.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return category, nil
}
