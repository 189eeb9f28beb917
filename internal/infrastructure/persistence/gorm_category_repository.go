package persistence

import (
	"context"
	"fmt"

	"github.com/bangazon/bangazon-api/internal/domain/categories"
	"github.com/bangazon/bangazon-api/internal/infrastructure/persistence/models"
	"github.com/bangazon/bangazon-api/internal/pkg/apperrors"
	"github.com/bangazon/bangazon-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCategoryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCategoryRepository creates a new GORM-based CategoryRepository implementation
func NewGormCategoryRepository(db *gorm.DB, logger logger.Logger) (categories.CategoryRepository, error) {
	return &gormCategoryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCategoryRepository) Create(ctx context.Context, category *categories.Category) error {
	if err := category.Validate(); err != nil {
		return apperrors.Invalid("%v", err).Wrap(err)
	}

	model := &models.CategoryModel{}
	model.FromDomain(category)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	category.ID = model.ID

	r.logger.Info("Created category with id ", category.ID)
	return nil
}

func (r *gormCategoryRepository) List(ctx context.Context) ([]*categories.Category, error) {
	var modelList []*models.CategoryModel
	if err := r.db.WithContext(ctx).Order("id").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	domainList := make([]*categories.Category, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*categories.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", categoryID).First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, apperrors.NotFound(categories.NotFoundMessage).Wrap(err)
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCategoryRepository) GetByLabel(ctx context.Context, label string) (*categories.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).Where("label = ?", label).First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, apperrors.NotFound(categories.NotFoundMessage).Wrap(err)
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	return model.ToDomain(), nil
}
