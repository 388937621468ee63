package promotion

import (
	"context"

	"jewelstore/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Promotion, error)
	// GetByCode matches the code exactly, case-sensitively.
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
	Create(ctx context.Context, p domain.Promotion) (*domain.Promotion, error)
	Update(ctx context.Context, p domain.Promotion) (*domain.Promotion, error)
	Delete(ctx context.Context, id string) error
}
