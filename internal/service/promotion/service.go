package promotion

import (
	"context"
	"errors"
	"strings"
	"time"

	"jewelstore/internal/domain"
	"jewelstore/internal/pricing"
)

var (
	// ErrNotFound is returned when no promotion matches the code exactly.
	ErrNotFound = errors.New("promotion not found")
	// ErrNotStarted is returned when the promotion window has not opened yet.
	ErrNotStarted = errors.New("promotion not started")
	// ErrExpired is returned when the promotion window has closed.
	ErrExpired = errors.New("promotion expired")
	// ErrConditionNotMet is returned when the subtotal is below the
	// promotion's minimum purchase.
	ErrConditionNotMet = errors.New("promotion condition not met")
)

type promotionRepo interface {
	List(ctx context.Context) ([]domain.Promotion, error)
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
	Create(ctx context.Context, p domain.Promotion) (*domain.Promotion, error)
	Update(ctx context.Context, p domain.Promotion) (*domain.Promotion, error)
	Delete(ctx context.Context, id string) error
}

// Service resolves voucher codes against subtotals. It never mutates
// promotion state; redemptions are counted at order confirmation only.
type Service struct {
	repo promotionRepo
	now  func() time.Time
}

func New(repo promotionRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Resolution is the outcome of a successful code application.
type Resolution struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Percent  int    `json:"percent"`
	Discount int64  `json:"discount"`
}

// Resolve validates a voucher code against the current subtotal. Codes are
// matched case-sensitively; the window is evaluated against now, so a stored
// status can never disagree with the dates.
func (s *Service) Resolve(ctx context.Context, code string, subtotal int64) (*Resolution, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrNotFound
	}
	p, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch p.StatusAt(s.now()) {
	case domain.PromotionScheduled:
		return nil, ErrNotStarted
	case domain.PromotionExpired:
		return nil, ErrExpired
	}

	if p.MinSubtotal > 0 && subtotal < p.MinSubtotal {
		return nil, ErrConditionNotMet
	}

	return &Resolution{
		Code:     p.Code,
		Name:     p.Name,
		Percent:  p.Percent,
		Discount: pricing.Discount(subtotal, p.Percent),
	}, nil
}

// List returns all promotions for the back office.
func (s *Service) List(ctx context.Context) ([]domain.Promotion, error) {
	return s.repo.List(ctx)
}

// Create validates and stores a new promotion.
func (s *Service) Create(ctx context.Context, p domain.Promotion) (*domain.Promotion, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

// Update validates and stores promotion changes.
func (s *Service) Update(ctx context.Context, p domain.Promotion) (*domain.Promotion, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validate(p domain.Promotion) error {
	if strings.TrimSpace(p.Code) == "" {
		return domain.Invalid("code required")
	}
	if p.Percent < 1 || p.Percent > 100 {
		return domain.Invalid("percent must be between 1 and 100")
	}
	if p.MinSubtotal < 0 {
		return domain.Invalid("minSubtotal must not be negative")
	}
	if !p.EndsAt.After(p.StartsAt) {
		return domain.Invalid("endsAt must be after startsAt")
	}
	return nil
}
