package product

import (
	"context"

	"jewelstore/internal/domain"
)

// ListFilter narrows and pages product listings. Zero values mean "no
// constraint"; Limit falls back to a server-side default.
type ListFilter struct {
	CategoryID string
	Search     string
	Limit      int
	Offset     int
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
