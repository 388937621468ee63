package cart

import (
	"context"

	"jewelstore/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, customerID string) (*domain.Cart, error)
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	GetActiveByCustomer(ctx context.Context, customerID string) (*domain.Cart, error)
	AddLine(ctx context.Context, cartID string, product domain.Product, size *string, quantity int) error
	ChangeLineQuantity(ctx context.Context, cartID, lineID string, quantity int) error
	RemoveLine(ctx context.Context, cartID, lineID string) error
	Clear(ctx context.Context, cartID string) error
}
