package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bugstore/internal/domain/entity"
	domainerrors "bugstore/internal/domain/errors"
	"bugstore/internal/domain/repository"
	mockRepo "bugstore/internal/mocks/repository"
	"bugstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	t         *testing.T
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewOrderService(txManager, logger)

	return orderServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

func (f orderServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func TestOrderService_ListOrders_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	expectedOrders := []*entity.Order{
		{ID: uuid.New(), CustomerID: uuid.New()},
		{ID: uuid.New(), CustomerID: uuid.New()},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		orderRepo.EXPECT().FindAllWithDetails(ctx).Return(expectedOrders, nil)
	})

	orders, err := fx.service.ListOrders(ctx)

	require.NoError(t, err)
	assert.Equal(t, expectedOrders, orders)
}

func TestOrderService_GetOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	expectedOrder := &entity.Order{
		ID:         orderID,
		CustomerID: uuid.New(),
		Customer:   &entity.Customer{Name: "Alice"},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		orderRepo.EXPECT().FindByIDWithDetails(ctx, orderID).Return(expectedOrder, nil)
	})

	order, err := fx.service.GetOrder(ctx, orderID)

	require.NoError(t, err)
	assert.Equal(t, expectedOrder, order)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		orderRepo.EXPECT().FindByIDWithDetails(ctx, orderID).Return(nil, repository.ErrOrderNotFound)
	})

	order, err := fx.service.GetOrder(ctx, orderID)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	keyboard := &entity.Product{
		ID:    uuid.New(),
		Title: "Keyboard",
		Price: decimal.RequireFromString("100.00"),
	}
	mouse := &entity.Product{
		ID:    uuid.New(),
		Title: "Mouse",
		Price: decimal.RequireFromString("19.90"),
	}
	customer := &entity.Customer{ID: customerID, Name: "Alice"}

	input := &usecase.CreateOrderInput{
		CustomerID: customerID,
		Lines: []usecase.OrderLineInput{
			{ProductID: keyboard.ID, Quantity: 2},
			{ProductID: mouse.ID, Quantity: 1},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		customerRepo := mockRepo.NewMockCustomerRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().CustomerRepo().Return(customerRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		customerRepo.EXPECT().FindByID(ctx, customerID).Return(customer, nil)
		productRepo.EXPECT().
			FindByIDs(ctx, []uuid.UUID{keyboard.ID, mouse.ID}).
			Return([]*entity.Product{keyboard, mouse}, nil)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	})

	order, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, customerID, order.CustomerID)
	assert.Equal(t, customer, order.Customer)
	require.Len(t, order.Lines, 2)

	// 2 x 100.00 must be exactly 200.00
	assert.True(t, order.Lines[0].Total.Equal(decimal.RequireFromString("200.00")))
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.Equal(t, keyboard.ID, order.Lines[0].ProductID)

	assert.True(t, order.Lines[1].Total.Equal(decimal.RequireFromString("19.90")))
	assert.Equal(t, 1, order.Lines[1].Quantity)
	assert.Equal(t, mouse.ID, order.Lines[1].ProductID)

	for _, line := range order.Lines {
		assert.Equal(t, order.ID, line.OrderID)
	}
}

func TestOrderService_CreateOrder_RepeatedProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	keyboard := &entity.Product{
		ID:    uuid.New(),
		Title: "Keyboard",
		Price: decimal.RequireFromString("100.00"),
	}
	customer := &entity.Customer{ID: customerID, Name: "Alice"}

	// The same product on two separate lines stays two lines
	input := &usecase.CreateOrderInput{
		CustomerID: customerID,
		Lines: []usecase.OrderLineInput{
			{ProductID: keyboard.ID, Quantity: 1},
			{ProductID: keyboard.ID, Quantity: 3},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		customerRepo := mockRepo.NewMockCustomerRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().CustomerRepo().Return(customerRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		customerRepo.EXPECT().FindByID(ctx, customerID).Return(customer, nil)
		productRepo.EXPECT().
			FindByIDs(ctx, []uuid.UUID{keyboard.ID, keyboard.ID}).
			Return([]*entity.Product{keyboard}, nil)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	})

	order, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	require.Len(t, order.Lines, 2)
	assert.True(t, order.Lines[0].Total.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, order.Lines[1].Total.Equal(decimal.RequireFromString("300.00")))
}

func TestOrderService_CreateOrder_InvalidQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		CustomerID: uuid.New(),
		Lines: []usecase.OrderLineInput{
			{ProductID: uuid.New(), Quantity: 0},
		},
	}

	// No transaction may be opened for an invalid quantity
	order, err := fx.service.CreateOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestOrderService_CreateOrder_NegativeQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		CustomerID: uuid.New(),
		Lines: []usecase.OrderLineInput{
			{ProductID: uuid.New(), Quantity: -3},
		},
	}

	order, err := fx.service.CreateOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestOrderService_CreateOrder_CustomerNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	input := &usecase.CreateOrderInput{
		CustomerID: customerID,
		Lines: []usecase.OrderLineInput{
			{ProductID: uuid.New(), Quantity: 1},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		customerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().CustomerRepo().Return(customerRepo)
		customerRepo.EXPECT().FindByID(ctx, customerID).Return(nil, repository.ErrCustomerNotFound)
	})

	order, err := fx.service.CreateOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestOrderService_CreateOrder_ProductMissing(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	keyboard := &entity.Product{
		ID:    uuid.New(),
		Title: "Keyboard",
		Price: decimal.RequireFromString("100.00"),
	}
	ghostID := uuid.New()
	customer := &entity.Customer{ID: customerID, Name: "Alice"}

	input := &usecase.CreateOrderInput{
		CustomerID: customerID,
		Lines: []usecase.OrderLineInput{
			{ProductID: keyboard.ID, Quantity: 1},
			{ProductID: ghostID, Quantity: 1},
		},
	}

	// The order repository is never touched: one missing product rejects
	// the whole request before anything is persisted.
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		customerRepo := mockRepo.NewMockCustomerRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().CustomerRepo().Return(customerRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		customerRepo.EXPECT().FindByID(ctx, customerID).Return(customer, nil)
		productRepo.EXPECT().
			FindByIDs(ctx, []uuid.UUID{keyboard.ID, ghostID}).
			Return([]*entity.Product{keyboard}, nil)
	})

	order, err := fx.service.CreateOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), ghostID.String())
}

func TestOrderService_UpdateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	newCustomerID := uuid.New()
	newCustomer := &entity.Customer{ID: newCustomerID, Name: "Bob"}
	reloadedOrder := &entity.Order{
		ID:         orderID,
		CustomerID: newCustomerID,
		Customer:   newCustomer,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		customerRepo := mockRepo.NewMockCustomerRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().CustomerRepo().Return(customerRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		customerRepo.EXPECT().FindByID(ctx, newCustomerID).Return(newCustomer, nil)
		orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		orderRepo.EXPECT().FindByIDWithDetails(ctx, orderID).Return(reloadedOrder, nil)
	})

	order, err := fx.service.UpdateOrder(ctx, orderID, &usecase.UpdateOrderInput{CustomerID: newCustomerID})

	require.NoError(t, err)
	assert.Equal(t, reloadedOrder, order)
}

func TestOrderService_UpdateOrder_OrderNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	newCustomerID := uuid.New()
	newCustomer := &entity.Customer{ID: newCustomerID, Name: "Bob"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		customerRepo := mockRepo.NewMockCustomerRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().CustomerRepo().Return(customerRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		customerRepo.EXPECT().FindByID(ctx, newCustomerID).Return(newCustomer, nil)
		orderRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Order")).
			Return(repository.ErrOrderNotFound)
	})

	order, err := fx.service.UpdateOrder(ctx, orderID, &usecase.UpdateOrderInput{CustomerID: newCustomerID})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_UpdateOrder_CustomerNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	newCustomerID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		customerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().CustomerRepo().Return(customerRepo)
		customerRepo.EXPECT().FindByID(ctx, newCustomerID).Return(nil, repository.ErrCustomerNotFound)
	})

	order, err := fx.service.UpdateOrder(ctx, orderID, &usecase.UpdateOrderInput{CustomerID: newCustomerID})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestOrderService_DeleteOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		orderRepo.EXPECT().Delete(ctx, orderID).Return(nil)
	})

	err := fx.service.DeleteOrder(ctx, orderID)

	require.NoError(t, err)
}

func TestOrderService_DeleteOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		orderRepo.EXPECT().Delete(ctx, orderID).Return(repository.ErrOrderNotFound)
	})

	err := fx.service.DeleteOrder(ctx, orderID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
