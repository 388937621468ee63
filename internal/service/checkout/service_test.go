package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelstore/internal/domain"
	orderrepo "jewelstore/internal/repository/order"
	promotionsvc "jewelstore/internal/service/promotion"
)

type fakeCartRepo struct {
	cart *domain.Cart
	err  error
}

func (f *fakeCartRepo) GetActiveByCustomer(_ context.Context, _ string) (*domain.Cart, error) {
	return f.cart, f.err
}

type fakeProductRepo struct {
	products map[string]*domain.Product
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

type fakeOrderRepo struct {
	mu      sync.Mutex
	calls   int
	lastIn  orderrepo.CreateInput
	err     error
	entered chan struct{}
	release chan struct{}
}

func (f *fakeOrderRepo) Create(_ context.Context, in orderrepo.CreateInput) (*domain.Order, error) {
	f.mu.Lock()
	f.calls++
	f.lastIn = in
	f.mu.Unlock()
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Order{
		ID:          "order-1",
		Number:      in.Number,
		CustomerID:  in.CustomerID,
		Status:      domain.OrderPending,
		Subtotal:    in.Subtotal,
		Discount:    in.Discount,
		ShippingFee: in.ShippingFee,
		Total:       in.Total,
	}, nil
}

func (f *fakeOrderRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeResolver struct {
	res          *promotionsvc.Resolution
	err          error
	lastSubtotal int64
}

func (f *fakeResolver) Resolve(_ context.Context, _ string, subtotal int64) (*promotionsvc.Resolution, error) {
	f.lastSubtotal = subtotal
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

type fakePublisher struct {
	published []*domain.Order
	err       error
}

func (f *fakePublisher) PublishOrderCreated(_ context.Context, o *domain.Order) error {
	f.published = append(f.published, o)
	return f.err
}

func twoRingCart() *domain.Cart {
	return &domain.Cart{
		ID:         "cart-1",
		CustomerID: "cust-1",
		State:      domain.CartStateActive,
		Lines: []domain.CartLine{
			{ID: "l1", ProductID: "ring-1", Quantity: 2, UnitPrice: 500000},
		},
	}
}

func validDraft() Draft {
	return Draft{
		Recipient: domain.Recipient{
			Name:     "Nguyen Van A",
			Phone:    "0900000000",
			Address:  "1 Le Loi",
			City:     "Ho Chi Minh",
			District: "1",
		},
	}
}

func newTestService(carts *fakeCartRepo, orders *fakeOrderRepo, resolver *fakeResolver, pub *fakePublisher) *Service {
	products := &fakeProductRepo{products: map[string]*domain.Product{
		"ring-1": {ID: "ring-1", Name: "Gold Ring", Price: 500000},
	}}
	var events eventPublisher
	if pub != nil {
		events = pub
	}
	return New(carts, products, orders, resolver, events, 20000, nil)
}

func TestSubmitRequiresAuthentication(t *testing.T) {
	svc := newTestService(&fakeCartRepo{}, &fakeOrderRepo{}, &fakeResolver{}, nil)
	_, err := svc.Submit(context.Background(), "", validDraft())
	require.ErrorIs(t, err, ErrAuthenticationRequired)
}

func TestSubmitValidatesRecipientFailFast(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newTestService(&fakeCartRepo{cart: twoRingCart()}, orders, &fakeResolver{}, nil)

	draft := validDraft()
	draft.Recipient.Name = ""
	draft.Recipient.Phone = ""

	_, err := svc.Submit(context.Background(), "cust-1", draft)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field, "first missing field wins")
	assert.Zero(t, orders.callCount(), "validation failure must not reach storage")
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	svc := newTestService(&fakeCartRepo{cart: &domain.Cart{ID: "cart-1"}}, &fakeOrderRepo{}, &fakeResolver{}, nil)
	_, err := svc.Submit(context.Background(), "cust-1", validDraft())
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestSubmitNoPromotion(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newTestService(&fakeCartRepo{cart: twoRingCart()}, orders, &fakeResolver{}, nil)

	order, err := svc.Submit(context.Background(), "cust-1", validDraft())
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), order.Subtotal)
	assert.Equal(t, int64(0), order.Discount)
	assert.Equal(t, int64(1020000), order.Total)
	assert.Equal(t, 1, orders.callCount())
	assert.Equal(t, "Gold Ring", orders.lastIn.Lines[0].Name)
	assert.NotEmpty(t, orders.lastIn.Number)
}

func TestSubmitRepricesPromotionAgainstCurrentSubtotal(t *testing.T) {
	orders := &fakeOrderRepo{}
	resolver := &fakeResolver{res: &promotionsvc.Resolution{Code: "SUMMER10", Name: "Summer", Percent: 10, Discount: 100000}}
	svc := newTestService(&fakeCartRepo{cart: twoRingCart()}, orders, resolver, nil)

	draft := validDraft()
	draft.PromotionCode = "SUMMER10"

	order, err := svc.Submit(context.Background(), "cust-1", draft)
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), resolver.lastSubtotal, "discount recomputed against the subtotal read at submit")
	assert.Equal(t, int64(100000), order.Discount)
	assert.Equal(t, int64(920000), order.Total)
	assert.Equal(t, "SUMMER10", orders.lastIn.PromotionCode)
}

func TestSubmitSurfacesPromotionRejection(t *testing.T) {
	orders := &fakeOrderRepo{}
	resolver := &fakeResolver{err: promotionsvc.ErrConditionNotMet}
	svc := newTestService(&fakeCartRepo{cart: twoRingCart()}, orders, resolver, nil)

	draft := validDraft()
	draft.PromotionCode = "BIG"

	_, err := svc.Submit(context.Background(), "cust-1", draft)
	require.ErrorIs(t, err, promotionsvc.ErrConditionNotMet)
	assert.Zero(t, orders.callCount())
}

func TestSubmitSurfacesInsufficientStock(t *testing.T) {
	orders := &fakeOrderRepo{err: domain.ErrInsufficientStock}
	svc := newTestService(&fakeCartRepo{cart: twoRingCart()}, orders, &fakeResolver{}, nil)
	_, err := svc.Submit(context.Background(), "cust-1", validDraft())
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestSubmitDoubleSubmitIsRejected(t *testing.T) {
	orders := &fakeOrderRepo{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	svc := newTestService(&fakeCartRepo{cart: twoRingCart()}, orders, &fakeResolver{}, nil)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), "cust-1", validDraft())
		firstDone <- err
	}()

	// Wait until the first submission is inside the repository call.
	select {
	case <-orders.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first submission never reached the repository")
	}

	_, err := svc.Submit(context.Background(), "cust-1", validDraft())
	require.ErrorIs(t, err, ErrSubmissionInFlight)

	close(orders.release)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, orders.callCount(), "exactly one creation request may reach storage")
}

func TestSubmitDifferentCustomersAreIndependent(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newTestService(&fakeCartRepo{cart: twoRingCart()}, orders, &fakeResolver{}, nil)

	_, err := svc.Submit(context.Background(), "cust-1", validDraft())
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "cust-2", validDraft())
	require.NoError(t, err)
	assert.Equal(t, 2, orders.callCount())
}

func TestSubmitPublishFailureDoesNotFailOrder(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := newTestService(&fakeCartRepo{cart: twoRingCart()}, &fakeOrderRepo{}, &fakeResolver{}, pub)

	order, err := svc.Submit(context.Background(), "cust-1", validDraft())
	require.NoError(t, err)
	assert.Len(t, pub.published, 1)
	assert.Equal(t, order.ID, pub.published[0].ID)
}

func TestQuoteFormatsTotal(t *testing.T) {
	svc := newTestService(&fakeCartRepo{cart: twoRingCart()}, &fakeOrderRepo{}, &fakeResolver{}, nil)
	q, err := svc.Quote(context.Background(), "cust-1", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1020000), q.Total)
	assert.Equal(t, "1.020.000 ₫", q.TotalFormatted)
}
