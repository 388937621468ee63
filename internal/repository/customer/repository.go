package customer

import (
	"context"

	"jewelstore/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, c domain.Customer) (*domain.Customer, error)
}
