// Package entity contains the core business objects of the store,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a person who can place orders.
// Email doubles as a human-friendly lookup key and is unique across the store.
type Customer struct {
	ID        uuid.UUID // The unique identifier assigned at creation time.
	Name      string    // The customer's display name.
	Email     string    // Unique contact email, also used as a lookup key.
	Phone     string    // Contact phone number, free-form text.
	BirthDate time.Time // Date of birth; only the date part is meaningful.
	CreatedAt time.Time // Timestamp of when this customer was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
