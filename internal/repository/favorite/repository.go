package favorite

import (
	"context"

	"jewelstore/internal/domain"
)

type Repository interface {
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Favorite, error)
	Add(ctx context.Context, customerID, productID string) (*domain.Favorite, error)
	Remove(ctx context.Context, customerID, productID string) error
}
