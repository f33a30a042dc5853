package impl

import (
	"context"
	"log/slog"

	"bugstore/internal/domain/entity"
	domainerrors "bugstore/internal/domain/errors"
	"bugstore/internal/domain/repository"
	"bugstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListProducts returns all products ordered by title ascending.
func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		products = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns the product with the given ID.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}
		product = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// GetProductBySlug returns the product with the given slug.
func (srv *productService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product by slug")
		}
		product = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get product by slug")
	}

	return product, nil
}

// CreateProduct assigns a new identity and persists the product.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.logger.Info("Creating product", "slug", input.Slug)

	product := &entity.Product{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Slug:        input.Slug,
		Price:       input.Price,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct replaces all mutable fields of an existing product.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.logger.Info("Updating product", "productID", id)

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		// 1. Find the product
		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		// 2. Replace all mutable fields wholesale
		found.Title = input.Title
		found.Description = input.Description
		found.Slug = input.Slug
		found.Price = input.Price

		// 3. Save the updated product
		if err := productRepo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to update product")
		}
		product = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct physically removes the product with the given ID.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting product", "productID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProductRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}
