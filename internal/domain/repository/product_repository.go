package repository

import (
	"context"
	"errors"

	"bugstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindAll retrieves every product, ordered by title ascending.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a single product by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindByIDs bulk-resolves products by ID. Duplicate IDs in the input are
	// deduplicated before lookup and IDs with no match are silently omitted
	// from the result; a partial result is not an error.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces all mutable fields of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete physically removes the product with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
