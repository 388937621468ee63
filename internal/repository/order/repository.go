package order

import (
	"context"

	"jewelstore/internal/domain"
)

// CreateInput carries everything needed to persist an order atomically.
type CreateInput struct {
	Number        string
	CustomerID    string
	CartID        string
	Subtotal      int64
	Discount      int64
	ShippingFee   int64
	Total         int64
	PromotionCode string
	Recipient     domain.Recipient
	Lines         []CreateLine
}

type CreateLine struct {
	ProductID string
	Name      string
	Size      *string
	Quantity  int
	UnitPrice int64
	Total     int64
}

type Repository interface {
	// Create persists the order, decrements product stock, records the
	// promotion redemption and closes the cart in a single transaction.
	// Returns domain.ErrInsufficientStock when any line exceeds stock.
	Create(ctx context.Context, in CreateInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	List(ctx context.Context, limit, offset int) ([]domain.Order, int, error)
	SetStatus(ctx context.Context, id, status string) error
}
