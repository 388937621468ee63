package review

import (
	"context"
	"strings"

	"jewelstore/internal/domain"
)

type reviewRepo interface {
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	Create(ctx context.Context, rv domain.Review) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}

type productRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
}

type Service struct {
	repo     reviewRepo
	products productRepo
}

func New(repo reviewRepo, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) ListByProductSlug(ctx context.Context, slug string) ([]domain.Review, error) {
	product, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	reviews, err := s.repo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

type CreateInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (s *Service) Create(ctx context.Context, customerID, productSlug string, in CreateInput) (*domain.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.Invalid("rating must be between 1 and 5")
	}
	product, err := s.products.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Review{
		ProductID:  product.ID,
		CustomerID: customerID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
