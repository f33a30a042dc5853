package usecase

import (
	"context"

	"bugstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a new product.
type CreateProductInput struct {
	Title       string
	Description string
	Slug        string
	Price       decimal.Decimal
}

// UpdateProductInput defines the data for a wholesale product update.
type UpdateProductInput struct {
	Title       string
	Description string
	Slug        string
	Price       decimal.Decimal
}

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	// ListProducts returns all products ordered by title ascending.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns the product with the given ID.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// GetProductBySlug returns the product with the given slug.
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// CreateProduct assigns a new identity, persists the product and
	// returns the created record.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct replaces all mutable fields of an existing product.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct physically removes the product.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
