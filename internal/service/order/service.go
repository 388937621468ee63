package order

import (
	"context"

	"jewelstore/internal/domain"
	orderrepo "jewelstore/internal/repository/order"
)

var validStatuses = map[string]bool{
	domain.OrderPending:   true,
	domain.OrderConfirmed: true,
	domain.OrderShipped:   true,
	domain.OrderDelivered: true,
	domain.OrderCancelled: true,
}

// Service serves order reads and back-office status changes. Creation goes
// through the checkout service only.
type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Get returns an order only to its owner.
func (s *Service) Get(ctx context.Context, customerID, orderID string) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != customerID {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	orders, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *Service) AdminList(ctx context.Context, limit, offset int) ([]domain.Order, int, error) {
	orders, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, total, nil
}

func (s *Service) AdminGet(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

func (s *Service) SetStatus(ctx context.Context, orderID, status string) error {
	if !validStatuses[status] {
		return domain.Invalid("unknown status")
	}
	return s.repo.SetStatus(ctx, orderID, status)
}
