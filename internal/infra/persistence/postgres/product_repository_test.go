package postgres

import (
	"context"
	"testing"

	"bugstore/internal/domain/entity"
	domainerrors "bugstore/internal/domain/errors"
	"bugstore/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(title, slug, price string) *entity.Product {
	return &entity.Product{
		ID:          uuid.New(),
		Title:       title,
		Description: "test product",
		Slug:        slug,
		Price:       decimal.RequireFromString(price),
	}
}

func TestProductRepository_CreateAndFindByID(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	product := newTestProduct("Keyboard", "keyboard", "49.90")
	require.NoError(t, repo.Create(ctx, product))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", found.Title)
	assert.Equal(t, "keyboard", found.Slug)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("49.90")))
}

func TestProductRepository_FindAll_OrderedByTitle(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestProduct("Mouse", "mouse", "19.90")))
	require.NoError(t, repo.Create(ctx, newTestProduct("Keyboard", "keyboard", "49.90")))

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Keyboard", products[0].Title)
	assert.Equal(t, "Mouse", products[1].Title)
}

func TestProductRepository_FindAll_Empty(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductRepository_FindBySlug(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	product := newTestProduct("Keyboard", "keyboard", "49.90")
	require.NoError(t, repo.Create(ctx, product))

	found, err := repo.FindBySlug(ctx, "keyboard")
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)

	_, err = repo.FindBySlug(ctx, "ghost")
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}

func TestProductRepository_FindByIDs(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	keyboard := newTestProduct("Keyboard", "keyboard", "49.90")
	mouse := newTestProduct("Mouse", "mouse", "19.90")
	require.NoError(t, repo.Create(ctx, keyboard))
	require.NoError(t, repo.Create(ctx, mouse))

	// Duplicated and unknown IDs: duplicates collapse, misses are omitted.
	products, err := repo.FindByIDs(ctx, []uuid.UUID{keyboard.ID, keyboard.ID, mouse.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, products, 2)

	ids := map[uuid.UUID]bool{}
	for _, product := range products {
		ids[product.ID] = true
	}
	assert.True(t, ids[keyboard.ID])
	assert.True(t, ids[mouse.ID])
}

func TestProductRepository_FindByIDs_EmptyInput(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	products, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductRepository_FindByIDs_AllMissing(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	products, err := repo.FindByIDs(ctx, []uuid.UUID{uuid.New(), uuid.New()})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_Create_DuplicateSlug(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestProduct("Keyboard", "keyboard", "49.90")))

	err := repo.Create(ctx, newTestProduct("Another Keyboard", "keyboard", "59.90"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductSlugTaken))
}

func TestProductRepository_Update(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	product := newTestProduct("Keyboard", "keyboard", "49.90")
	require.NoError(t, repo.Create(ctx, product))

	product.Title = "Keyboard Pro"
	product.Slug = "keyboard-pro"
	product.Price = decimal.RequireFromString("79.90")
	require.NoError(t, repo.Update(ctx, product))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard Pro", found.Title)
	assert.Equal(t, "keyboard-pro", found.Slug)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("79.90")))
}

func TestProductRepository_Update_NotFound(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	err := repo.Update(ctx, newTestProduct("Ghost", "ghost", "1.00"))
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}

func TestProductRepository_Delete(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	product := newTestProduct("Keyboard", "keyboard", "49.90")
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err := repo.FindByID(ctx, product.ID)
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}

func TestProductRepository_Delete_NotFound(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	err := repo.Delete(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}
