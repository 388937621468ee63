package cart

import (
	"context"
	"errors"
	"strings"

	"jewelstore/internal/domain"
)

type cartRepo interface {
	Create(ctx context.Context, customerID string) (*domain.Cart, error)
	GetActiveByCustomer(ctx context.Context, customerID string) (*domain.Cart, error)
	AddLine(ctx context.Context, cartID string, product domain.Product, size *string, quantity int) error
	ChangeLineQuantity(ctx context.Context, cartID, lineID string, quantity int) error
	RemoveLine(ctx context.Context, cartID, lineID string) error
	Clear(ctx context.Context, cartID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Service owns cart mutations. Malformed lines (non-positive quantity,
// unknown product, bad size) are rejected here so the pricing layer can
// assume validated input.
type Service struct {
	repo        cartRepo
	productRepo productRepo
}

func New(repo cartRepo, productRepo productRepo) *Service {
	return &Service{repo: repo, productRepo: productRepo}
}

// Get returns the customer's active cart, creating one on first use.
func (s *Service) Get(ctx context.Context, customerID string) (*domain.Cart, error) {
	cart, err := s.repo.GetActiveByCustomer(ctx, customerID)
	if errors.Is(err, domain.ErrNotFound) {
		return s.repo.Create(ctx, customerID)
	}
	return cart, err
}

type AddLineInput struct {
	ProductID string  `json:"productId"`
	Size      *string `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
}

func (s *Service) AddLine(ctx context.Context, customerID string, in AddLineInput) (*domain.Cart, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, domain.Invalid("productId required")
	}
	if in.Quantity <= 0 {
		return nil, domain.Invalid("quantity must be positive")
	}
	product, err := s.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid("product not found")
		}
		return nil, err
	}
	if in.Size != nil && !hasSize(product.Sizes, *in.Size) {
		return nil, domain.Invalid("unknown size")
	}

	cart, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddLine(ctx, cart.ID, *product, in.Size, in.Quantity); err != nil {
		return nil, err
	}
	return s.repo.GetActiveByCustomer(ctx, customerID)
}

// ChangeLineQuantity sets a line's quantity; zero or less removes the line.
func (s *Service) ChangeLineQuantity(ctx context.Context, customerID, lineID string, quantity int) (*domain.Cart, error) {
	if strings.TrimSpace(lineID) == "" {
		return nil, domain.Invalid("lineId required")
	}
	cart, err := s.repo.GetActiveByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ChangeLineQuantity(ctx, cart.ID, lineID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetActiveByCustomer(ctx, customerID)
}

func (s *Service) RemoveLine(ctx context.Context, customerID, lineID string) (*domain.Cart, error) {
	if strings.TrimSpace(lineID) == "" {
		return nil, domain.Invalid("lineId required")
	}
	cart, err := s.repo.GetActiveByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.RemoveLine(ctx, cart.ID, lineID); err != nil {
		return nil, err
	}
	return s.repo.GetActiveByCustomer(ctx, customerID)
}

func (s *Service) Clear(ctx context.Context, customerID string) error {
	cart, err := s.repo.GetActiveByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	return s.repo.Clear(ctx, cart.ID)
}

func hasSize(sizes []string, size string) bool {
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}
