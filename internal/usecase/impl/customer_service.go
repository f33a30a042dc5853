// Package impl contains the application-specific business rules implementations.
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

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListCustomers returns all customers ordered by name ascending.
func (srv *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	var customers []*entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CustomerRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list customers")
		}
		customers = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// GetCustomer returns the customer with the given ID.
func (srv *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CustomerRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to find customer")
		}
		customer = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get customer")
	}

	return customer, nil
}

// GetCustomerByEmail returns the customer with the given email address.
func (srv *customerService) GetCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CustomerRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to find customer by email")
		}
		customer = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get customer by email")
	}

	return customer, nil
}

// CreateCustomer assigns a new identity and persists the customer.
func (srv *customerService) CreateCustomer(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	srv.logger.Info("Creating customer", "email", input.Email)

	customer := &entity.Customer{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		BirthDate: input.BirthDate,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CustomerRepo().Create(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to create customer")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	return customer, nil
}

// UpdateCustomer replaces all mutable fields of an existing customer.
// The current record is loaded first, changed wholesale and saved back.
func (srv *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *usecase.UpdateCustomerInput) (*entity.Customer, error) {
	srv.logger.Info("Updating customer", "customerID", id)

	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		// 1. Find the customer
		found, err := customerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to find customer")
		}

		// 2. Replace all mutable fields wholesale
		found.Name = input.Name
		found.Email = input.Email
		found.Phone = input.Phone
		found.BirthDate = input.BirthDate

		// 3. Save the updated customer
		if err := customerRepo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to update customer")
		}
		customer = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update customer")
	}

	return customer, nil
}

// DeleteCustomer physically removes the customer with the given ID.
func (srv *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting customer", "customerID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CustomerRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to delete customer")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete customer")
	}

	return nil
}
