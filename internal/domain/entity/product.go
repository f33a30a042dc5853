package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents an item offered by the store.
// Slug is a unique, human-readable lookup key; Price is kept as a decimal
// to avoid floating-point drift in order totals.
type Product struct {
	ID          uuid.UUID
	Title       string
	Description string
	Slug        string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
