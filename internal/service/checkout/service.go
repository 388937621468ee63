package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"jewelstore/internal/domain"
	"jewelstore/internal/pricing"
	orderrepo "jewelstore/internal/repository/order"
	promotionsvc "jewelstore/internal/service/promotion"
)

var (
	// ErrAuthenticationRequired is returned when no customer identity is
	// attached to the submission.
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrSubmissionInFlight is returned for a re-entrant submit while an
	// earlier one is still running; the duplicate never reaches storage.
	ErrSubmissionInFlight = errors.New("order submission already in progress")
	// ErrEmptyCart is returned when the cart holds no line items.
	ErrEmptyCart = errors.New("cart is empty")
)

// ValidationError reports the first missing draft field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

type cartRepo interface {
	GetActiveByCustomer(ctx context.Context, customerID string) (*domain.Cart, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type orderCreator interface {
	Create(ctx context.Context, in orderrepo.CreateInput) (*domain.Order, error)
}

type promotionResolver interface {
	Resolve(ctx context.Context, code string, subtotal int64) (*promotionsvc.Resolution, error)
}

type eventPublisher interface {
	PublishOrderCreated(ctx context.Context, o *domain.Order) error
}

// Service turns a draft into a durable order. Totals are recomputed from the
// current cart at submit time; nothing computed earlier is trusted.
type Service struct {
	carts       cartRepo
	products    productRepo
	orders      orderCreator
	promotions  promotionResolver
	events      eventPublisher
	shippingFee int64
	logger      *log.Logger

	mu       sync.Mutex
	inFlight map[string]bool
}

func New(carts cartRepo, products productRepo, orders orderCreator, promotions promotionResolver, events eventPublisher, shippingFee int64, logger *log.Logger) *Service {
	return &Service{
		carts:       carts,
		products:    products,
		orders:      orders,
		promotions:  promotions,
		events:      events,
		shippingFee: shippingFee,
		logger:      logger,
		inFlight:    make(map[string]bool),
	}
}

// Draft is the ephemeral submission payload. It is never persisted; the
// server-owned Order is created from it atomically.
type Draft struct {
	PromotionCode string           `json:"promotionCode,omitempty"`
	Recipient     domain.Recipient `json:"recipient"`
}

// Quote is a priced view of the current cart, for checkout preview.
type Quote struct {
	Subtotal       int64  `json:"subtotal"`
	Discount       int64  `json:"discount"`
	ShippingFee    int64  `json:"shippingFee"`
	Total          int64  `json:"total"`
	TotalFormatted string `json:"totalFormatted"`
	PromotionName  string `json:"promotionName,omitempty"`
}

// Quote prices the active cart, optionally applying a voucher code. The
// discount is always computed against the subtotal read now, so a quantity
// change after a code was applied cannot carry a stale discount forward.
func (s *Service) Quote(ctx context.Context, customerID, promotionCode string) (*Quote, error) {
	if customerID == "" {
		return nil, ErrAuthenticationRequired
	}
	cart, err := s.carts.GetActiveByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	subtotal := pricing.Subtotal(cart.Lines)

	var discount int64
	var promotionName string
	if strings.TrimSpace(promotionCode) != "" {
		res, err := s.promotions.Resolve(ctx, promotionCode, subtotal)
		if err != nil {
			return nil, err
		}
		discount = res.Discount
		promotionName = res.Name
	}

	total := pricing.Total(subtotal, discount, s.shippingFee)
	return &Quote{
		Subtotal:       subtotal,
		Discount:       discount,
		ShippingFee:    s.shippingFee,
		Total:          total,
		TotalFormatted: pricing.FormatVND(total),
		PromotionName:  promotionName,
	}, nil
}

// Submit validates the draft, reprices the cart and creates the order. At
// most one submission per customer is in flight; duplicates are rejected
// before any storage work. On success the cart is already closed by the
// order transaction, so the draft is dead to the caller.
func (s *Service) Submit(ctx context.Context, customerID string, draft Draft) (*domain.Order, error) {
	if customerID == "" {
		return nil, ErrAuthenticationRequired
	}

	s.mu.Lock()
	if s.inFlight[customerID] {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	s.inFlight[customerID] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inFlight, customerID)
		s.mu.Unlock()
	}()

	if err := validateRecipient(draft.Recipient); err != nil {
		return nil, err
	}

	cart, err := s.carts.GetActiveByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := pricing.Subtotal(cart.Lines)

	var discount int64
	promotionCode := strings.TrimSpace(draft.PromotionCode)
	if promotionCode != "" {
		res, err := s.promotions.Resolve(ctx, promotionCode, subtotal)
		if err != nil {
			return nil, err
		}
		discount = res.Discount
	}

	lines := make([]orderrepo.CreateLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		name := line.ProductID
		if product, err := s.products.GetByID(ctx, line.ProductID); err == nil {
			name = product.Name
		}
		lines = append(lines, orderrepo.CreateLine{
			ProductID: line.ProductID,
			Name:      name,
			Size:      line.Size,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Total:     line.UnitPrice * int64(line.Quantity),
		})
	}

	order, err := s.orders.Create(ctx, orderrepo.CreateInput{
		Number:        newOrderNumber(),
		CustomerID:    customerID,
		CartID:        cart.ID,
		Subtotal:      subtotal,
		Discount:      discount,
		ShippingFee:   s.shippingFee,
		Total:         pricing.Total(subtotal, discount, s.shippingFee),
		PromotionCode: promotionCode,
		Recipient:     draft.Recipient,
		Lines:         lines,
	})
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		if err := s.events.PublishOrderCreated(ctx, order); err != nil && s.logger != nil {
			s.logger.Printf("publish order created %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// validateRecipient fails fast on the first missing field.
func validateRecipient(r domain.Recipient) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"phone", r.Phone},
		{"address", r.Address},
		{"city", r.City},
		{"district", r.District},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

func newOrderNumber() string {
	return "JW-" + strings.ToUpper(uuid.NewString()[:8])
}
