package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the aggregate root for a purchase. It exclusively owns its
// Lines: they are created together with the order and removed with it.
type Order struct {
	ID         uuid.UUID
	CustomerID uuid.UUID // Must reference an existing Customer at creation time.
	Customer   *Customer // Resolved customer; populated on detailed reads.
	Lines      []*OrderLine
	CreatedAt  time.Time // Set once at creation, immutable afterwards.
	UpdatedAt  time.Time
}

// OrderLine is a single item of an Order. Total snapshots the product
// price at order creation time and never tracks later price changes.
type OrderLine struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Product   *Product // Resolved product; populated on detailed reads.
	Quantity  int
	Total     decimal.Decimal
}
