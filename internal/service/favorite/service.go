package favorite

import (
	"context"
	"errors"

	"jewelstore/internal/domain"
)

type favoriteRepo interface {
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Favorite, error)
	Add(ctx context.Context, customerID, productID string) (*domain.Favorite, error)
	Remove(ctx context.Context, customerID, productID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type Service struct {
	repo     favoriteRepo
	products productRepo
}

func New(repo favoriteRepo, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) List(ctx context.Context, customerID string) ([]domain.Favorite, error) {
	favs, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if favs == nil {
		favs = []domain.Favorite{}
	}
	return favs, nil
}

// Add is idempotent: favoriting twice returns the existing state.
func (s *Service) Add(ctx context.Context, customerID, productID string) (*domain.Favorite, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	fav, err := s.repo.Add(ctx, customerID, productID)
	if errors.Is(err, domain.ErrAlreadyExists) {
		favs, listErr := s.repo.ListByCustomer(ctx, customerID)
		if listErr != nil {
			return nil, listErr
		}
		for i := range favs {
			if favs[i].ProductID == productID {
				return &favs[i], nil
			}
		}
		return nil, err
	}
	return fav, err
}

func (s *Service) Remove(ctx context.Context, customerID, productID string) error {
	return s.repo.Remove(ctx, customerID, productID)
}
