package usecase

import (
	"context"

	"bugstore/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderLineInput is one requested line of a new order.
type OrderLineInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput defines the data required to create a new order.
type CreateOrderInput struct {
	CustomerID uuid.UUID
	Lines      []OrderLineInput
}

// UpdateOrderInput defines the data for an order update. Only the customer
// reference is mutable; lines are never recomputed or replaced.
type UpdateOrderInput struct {
	CustomerID uuid.UUID
}

// OrderUsecase defines the interface for order-related business operations.
// All reads return the detailed projection: the order with its resolved
// customer and each line's resolved product.
type OrderUsecase interface {
	// ListOrders returns all orders in the detailed projection.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// GetOrder returns the order with the given ID in the detailed projection.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// CreateOrder validates the customer and every referenced product,
	// computes line totals and persists the aggregate atomically.
	// No rows are written if any step fails.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// UpdateOrder propagates the customer reference only.
	UpdateOrder(ctx context.Context, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)

	// DeleteOrder removes the order together with its lines.
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
