// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bugstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CustomerRepository interface {
	// FindAll retrieves every customer, ordered by name ascending.
	// An empty store yields an empty slice, never an error.
	FindAll(ctx context.Context) ([]*entity.Customer, error)

	// FindByID retrieves a single customer by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByEmail retrieves a single customer by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// Create persists a new customer entity to the storage.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update replaces all mutable fields of an existing customer.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete physically removes the customer with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
