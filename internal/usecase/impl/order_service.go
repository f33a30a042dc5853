package impl

import (
	"context"
	"fmt"
	"log/slog"

	"bugstore/internal/domain/entity"
	domainerrors "bugstore/internal/domain/errors"
	"bugstore/internal/domain/repository"
	"bugstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// orderService implements the OrderUsecase interface. CreateOrder is the
// aggregate builder: it validates the customer and every referenced product,
// computes line totals and persists the whole aggregate in one transaction.
type orderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListOrders returns all orders in the detailed projection.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindAllWithDetails(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		orders = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns the order with the given ID in the detailed projection.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByIDWithDetails(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// CreateOrder builds and persists the order aggregate:
//  1. resolve the customer; a missing customer rejects the whole request
//  2. bulk-resolve the distinct products referenced by the lines
//  3. reject the whole request if any product is missing (no partial orders)
//  4. compute each line's total as price x quantity in decimal arithmetic
//  5. persist the order and all lines atomically
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.logger.Info("Creating order", "customerID", input.CustomerID, "lines", len(input.Lines))

	// Quantity validation needs no repository access; fail before opening
	// a transaction.
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrInvalidQuantity.WithDetails(
				fmt.Sprintf("quantity %d for product %s", line.Quantity, line.ProductID))
		}
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Resolve the customer
		customer, err := repoFactory.CustomerRepo().FindByID(ctx, input.CustomerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer does not exist")
			}

			return errors.Wrap(err, "failed to find customer")
		}

		// 2. Bulk-resolve the referenced products
		productIDs := make([]uuid.UUID, 0, len(input.Lines))
		for _, line := range input.Lines {
			productIDs = append(productIDs, line.ProductID)
		}

		products, err := repoFactory.ProductRepo().FindByIDs(ctx, productIDs)
		if err != nil {
			return errors.Wrap(err, "failed to resolve products")
		}

		productsByID := make(map[uuid.UUID]*entity.Product, len(products))
		for _, product := range products {
			productsByID[product.ID] = product
		}

		// 3 + 4. Assemble the lines, snapshotting each total
		orderID := uuid.New()
		lines := make([]*entity.OrderLine, 0, len(input.Lines))
		for _, line := range input.Lines {
			product, ok := productsByID[line.ProductID]
			if !ok {
				return domainerrors.ErrProductNotFound.WithDetails(
					fmt.Sprintf("product %s does not exist", line.ProductID))
			}

			lines = append(lines, &entity.OrderLine{
				ID:        uuid.New(),
				OrderID:   orderID,
				ProductID: product.ID,
				Product:   product,
				Quantity:  line.Quantity,
				Total:     product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
			})
		}

		// 5. Persist the aggregate
		newOrder := &entity.Order{
			ID:         orderID,
			CustomerID: customer.ID,
			Customer:   customer,
			Lines:      lines,
		}

		if err := repoFactory.OrderRepo().Create(ctx, newOrder); err != nil {
			return errors.Wrap(err, "failed to persist order")
		}
		order = newOrder

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	return order, nil
}

// UpdateOrder propagates the customer reference only. Lines are never
// recomputed or replaced by an update.
func (srv *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	srv.logger.Info("Updating order", "orderID", id, "customerID", input.CustomerID)

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// The new customer must exist before re-pointing the order at it.
		if _, err := repoFactory.CustomerRepo().FindByID(ctx, input.CustomerID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer does not exist")
			}

			return errors.Wrap(err, "failed to find customer")
		}

		orderRepo := repoFactory.OrderRepo()

		if err := orderRepo.Update(ctx, &entity.Order{ID: id, CustomerID: input.CustomerID}); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to update order")
		}

		found, err := orderRepo.FindByIDWithDetails(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload order")
		}
		order = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	return order, nil
}

// DeleteOrder removes the order together with its lines in one transaction.
func (srv *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting order", "orderID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OrderRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to delete order")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}
