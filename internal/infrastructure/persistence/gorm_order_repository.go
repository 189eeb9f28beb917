package persistence

import (
	"context"
	"fmt"

	"github.com/bangazon/bangazon-api/internal/domain/orders"
	"github.com/bangazon/bangazon-api/internal/infrastructure/persistence/models"
	"github.com/bangazon/bangazon-api/internal/pkg/apperrors"
	"github.com/bangazon/bangazon-api/internal/pkg/logger"

	"gorm.io/gorm"
)

// orderColumns are rewritten on every full update
var orderColumns = []string{"customer_id", "payment_type_id", "total", "needs_shipping", "is_completed", "date_placed"}

type gormOrderRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOrderRepository creates a new GORM-based OrderRepository implementation
func NewGormOrderRepository(db *gorm.DB, logger logger.Logger) (orders.OrderRepository, error) {
	return &gormOrderRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOrderRepository) Create(ctx context.Context, order *orders.Order) error {
	if err := order.Validate(); err != nil {
		return apperrors.Invalid("%v", err).Wrap(err)
	}

	model := &models.OrderModel{}
	model.FromDomain(order)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ReferenceNotFound("customer or payment type does not exist").Wrap(err)
		}
		return fmt.Errorf("failed to create order: %w", err)
	}
	order.ID = model.ID

	r.logger.Info("Created order with id ", order.ID)
	return nil
}

func (r *gormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Preload("Customer").
		Preload("PaymentType")
}

func (r *gormOrderRepository) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	dbQuery := r.preloaded(ctx)

	if query != nil {
		if query.CustomerID != nil {
			dbQuery = dbQuery.Where("customer_id = ?", *query.CustomerID)
		}
		if query.IsCompleted != nil {
			dbQuery = dbQuery.Where("is_completed = ?", *query.IsCompleted)
		}
	}

	var modelList []*models.OrderModel
	if err := dbQuery.Order("id").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	domainList := make([]*orders.Order, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, orderID uint) (*orders.Order, error) {
	var model models.OrderModel
	if err := r.preloaded(ctx).Where("id = ?", orderID).First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, apperrors.NotFound(orders.NotFoundMessage).Wrap(err)
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormOrderRepository) UpdateByID(ctx context.Context, order *orders.Order) error {
	if err := order.Validate(); err != nil {
		return apperrors.Invalid("%v", err).Wrap(err)
	}

	model := &models.OrderModel{}
	model.FromDomain(order)

	result := r.db.WithContext(ctx).
		Model(&models.OrderModel{ID: order.ID}).
		Select(orderColumns).
		Updates(model)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return apperrors.ReferenceNotFound("customer or payment type does not exist").Wrap(result.Error)
		}
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(orders.NotFoundMessage)
	}

	r.logger.Info("Updated order with id ", order.ID)
	return nil
}
