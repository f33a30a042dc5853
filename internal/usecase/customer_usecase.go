// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"bugstore/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCustomerInput defines the data required to create a new customer.
type CreateCustomerInput struct {
	Name      string
	Email     string
	Phone     string
	BirthDate time.Time
}

// UpdateCustomerInput defines the data for a wholesale customer update.
// All mutable fields are replaced; there are no partial patch semantics.
type UpdateCustomerInput struct {
	Name      string
	Email     string
	Phone     string
	BirthDate time.Time
}

// CustomerUsecase defines the interface for customer-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CustomerUsecase interface {
	// ListCustomers returns all customers ordered by name ascending.
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)

	// GetCustomer returns the customer with the given ID.
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// GetCustomerByEmail returns the customer with the given email.
	GetCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// CreateCustomer assigns a new identity, persists the customer and
	// returns the created record.
	CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)

	// UpdateCustomer replaces all mutable fields of an existing customer.
	UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error)

	// DeleteCustomer physically removes the customer.
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}
