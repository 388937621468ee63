package review

import (
	"context"

	"jewelstore/internal/domain"
)

type Repository interface {
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	Create(ctx context.Context, rv domain.Review) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}
