package repository

import (
	"context"
	"errors"

	"bugstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order aggregate persistence.
// An order and its lines are always written and removed together.
type OrderRepository interface {
	// FindAllWithDetails retrieves every order together with its customer
	// and each line's product (the detailed projection).
	FindAllWithDetails(ctx context.Context) ([]*entity.Order, error)

	// FindByIDWithDetails retrieves a single order in the detailed projection.
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Create persists a new order and all of its lines.
	Create(ctx context.Context, order *entity.Order) error

	// Update propagates CustomerID and UpdatedAt only. Lines are never
	// recomputed or replaced by an update.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes the order and its lines.
	Delete(ctx context.Context, id uuid.UUID) error
}
