package postgres

import (
	"context"

	"bugstore/internal/domain/entity"
	domainerrors "bugstore/internal/domain/errors"
	"bugstore/internal/domain/repository"
	"bugstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
// Orders are persisted as an aggregate: the order row and its line rows are
// always written and removed together.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindAllWithDetails retrieves every order with its customer and each line's product.
func (repo *orderRepository) FindAllWithDetails(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Lines").
		Preload("Lines.Product").
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindByIDWithDetails retrieves a single order in the detailed projection.
func (repo *orderRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Lines").
		Preload("Lines.Product").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// Create persists a new order and all of its lines. GORM's Create with
// associations inserts the order row and every line row together; the
// surrounding transaction makes the write all-or-nothing.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references a missing customer or product")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated timestamps
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// Update propagates CustomerID and UpdatedAt only. Lines are intentionally
// left untouched.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"customer_id": order.CustomerID,
		})

	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCustomerNotFound.WrapMessage("order references a missing customer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes the order and its lines. Lines are deleted explicitly in
// the same transaction rather than relying on the store-level cascade.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", id).
		Delete(&model.OrderLineModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order lines")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})

	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lines := make([]*entity.OrderLine, 0, len(data.Lines))
	for _, lineM := range data.Lines {
		lines = append(lines, &entity.OrderLine{
			ID:        lineM.ID,
			OrderID:   lineM.OrderID,
			ProductID: lineM.ProductID,
			Product:   toProductDomain(lineM.Product),
			Quantity:  lineM.Quantity,
			Total:     lineM.Total,
		})
	}

	return &entity.Order{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Customer:   toCustomerDomain(data.Customer),
		Lines:      lines,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel for persistence.
// Resolved Customer/Product projections are not written back; only the
// aggregate's own rows are persisted.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	lines := make([]*model.OrderLineModel, 0, len(data.Lines))
	for _, line := range data.Lines {
		lines = append(lines, &model.OrderLineModel{
			ID:        line.ID,
			OrderID:   line.OrderID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Total:     line.Total,
		})
	}

	return &model.OrderModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Lines:      lines,
	}
}
