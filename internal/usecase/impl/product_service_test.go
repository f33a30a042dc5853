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

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	t         *testing.T
	service   usecase.ProductUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProductService(txManager, logger)

	return productServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

func (f productServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func TestProductService_ListProducts_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	expectedProducts := []*entity.Product{
		{ID: uuid.New(), Title: "Keyboard", Slug: "keyboard", Price: decimal.RequireFromString("49.90")},
		{ID: uuid.New(), Title: "Mouse", Slug: "mouse", Price: decimal.RequireFromString("19.90")},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().FindAll(ctx).Return(expectedProducts, nil)
	})

	products, err := fx.service.ListProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
}

func TestProductService_ListProducts_Empty(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().FindAll(ctx).Return([]*entity.Product{}, nil)
	})

	products, err := fx.service.ListProducts(ctx)

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_GetProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	expectedProduct := &entity.Product{
		ID:    productID,
		Title: "Keyboard",
		Slug:  "keyboard",
		Price: decimal.RequireFromString("49.90"),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().FindByID(ctx, productID).Return(expectedProduct, nil)
	})

	product, err := fx.service.GetProduct(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
	})

	product, err := fx.service.GetProduct(ctx, productID)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_GetProductBySlug_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	expectedProduct := &entity.Product{
		ID:    uuid.New(),
		Title: "Keyboard",
		Slug:  "keyboard",
		Price: decimal.RequireFromString("49.90"),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().FindBySlug(ctx, "keyboard").Return(expectedProduct, nil)
	})

	product, err := fx.service.GetProductBySlug(ctx, "keyboard")

	require.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
}

func TestProductService_GetProductBySlug_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().FindBySlug(ctx, "ghost").Return(nil, repository.ErrProductNotFound)
	})

	_, err := fx.service.GetProductBySlug(ctx, "ghost")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Title:       "Keyboard",
		Description: "A mechanical keyboard",
		Slug:        "keyboard",
		Price:       decimal.RequireFromString("49.90"),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	})

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Keyboard", product.Title)
	assert.Equal(t, "keyboard", product.Slug)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("49.90")))
}

func TestProductService_CreateProduct_DuplicateSlug(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Title: "Keyboard",
		Slug:  "keyboard",
		Price: decimal.RequireFromString("49.90"),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Product")).
			Return(domainerrors.ErrProductSlugTaken.WrapMessage("slug already exists"))
	})

	product, err := fx.service.CreateProduct(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductSlugTaken))
}

func TestProductService_UpdateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	existingProduct := &entity.Product{
		ID:    productID,
		Title: "Keyboard",
		Slug:  "keyboard",
		Price: decimal.RequireFromString("49.90"),
	}
	input := &usecase.UpdateProductInput{
		Title:       "Keyboard Pro",
		Description: "Now with more keys",
		Slug:        "keyboard-pro",
		Price:       decimal.RequireFromString("79.90"),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().FindByID(ctx, productID).Return(existingProduct, nil)
		productRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	})

	product, err := fx.service.UpdateProduct(ctx, productID, input)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, productID, product.ID)
	assert.Equal(t, "Keyboard Pro", product.Title)
	assert.Equal(t, "keyboard-pro", product.Slug)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("79.90")))
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := &usecase.UpdateProductInput{Title: "Ghost"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
	})

	product, err := fx.service.UpdateProduct(ctx, productID, input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().Delete(ctx, productID).Return(nil)
	})

	err := fx.service.DeleteProduct(ctx, productID)

	require.NoError(t, err)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().Delete(ctx, productID).Return(repository.ErrProductNotFound)
	})

	err := fx.service.DeleteProduct(ctx, productID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
