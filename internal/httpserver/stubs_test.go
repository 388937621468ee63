package httpserver

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/gin-gonic/gin"

	"jewelstore/internal/domain"
	productrepo "jewelstore/internal/repository/product"
	cartsvc "jewelstore/internal/service/cart"
	catalogsvc "jewelstore/internal/service/catalog"
	checkoutsvc "jewelstore/internal/service/checkout"
	customersvc "jewelstore/internal/service/customer"
	promotionsvc "jewelstore/internal/service/promotion"
	reviewsvc "jewelstore/internal/service/review"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubCustomerSvc struct {
	customer  *domain.Customer
	signupErr error
	loginErr  error
	lookupErr error
	logoutErr error
	updateErr error
}

func (s *stubCustomerSvc) Signup(_ context.Context, in customersvc.SignupInput) (*domain.Customer, error) {
	if s.signupErr != nil {
		return nil, s.signupErr
	}
	return &domain.Customer{ID: "cust-1", Email: in.Email}, nil
}

func (s *stubCustomerSvc) Login(_ context.Context, email, _ string) (*domain.Customer, string, string, error) {
	if s.loginErr != nil {
		return nil, "", "", s.loginErr
	}
	return s.customer, "access-token", "refresh-token", nil
}

func (s *stubCustomerSvc) LookupByToken(_ context.Context, _ string) (*domain.Customer, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	return s.customer, nil
}

func (s *stubCustomerSvc) Logout(_ context.Context, _ string) error {
	return s.logoutErr
}

func (s *stubCustomerSvc) UpdateProfile(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &c, nil
}

func (s *stubCustomerSvc) AccessTTLSeconds() int { return 3600 }

type stubCatalogSvc struct {
	page       *catalogsvc.ProductPage
	product    *domain.Product
	categories []domain.Category
	err        error
}

func (s *stubCatalogSvc) ListProducts(_ context.Context, _ productrepo.ListFilter) (*catalogsvc.ProductPage, error) {
	return s.page, s.err
}

func (s *stubCatalogSvc) GetProductBySlug(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubCatalogSvc) ListProductsByCategorySlug(_ context.Context, _ string, _, _ int) (*catalogsvc.ProductPage, error) {
	return s.page, s.err
}

func (s *stubCatalogSvc) ListCategories(_ context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubCatalogSvc) CreateProduct(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	p.ID = "prod-new"
	return &p, nil
}

func (s *stubCatalogSvc) UpdateProduct(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &p, nil
}

func (s *stubCatalogSvc) DeleteProduct(_ context.Context, _ string) error { return s.err }

func (s *stubCatalogSvc) CreateCategory(_ context.Context, c domain.Category) (*domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	c.ID = "cat-new"
	return &c, nil
}

func (s *stubCatalogSvc) UpdateCategory(_ context.Context, c domain.Category) (*domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &c, nil
}

func (s *stubCatalogSvc) DeleteCategory(_ context.Context, _ string) error { return s.err }

type stubCartSvc struct {
	cart *domain.Cart
	err  error
}

func (s *stubCartSvc) Get(_ context.Context, _ string) (*domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartSvc) AddLine(_ context.Context, _ string, _ cartsvc.AddLineInput) (*domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartSvc) ChangeLineQuantity(_ context.Context, _, _ string, _ int) (*domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartSvc) RemoveLine(_ context.Context, _, _ string) (*domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartSvc) Clear(_ context.Context, _ string) error { return s.err }

type stubPromotionSvc struct {
	resolution *promotionsvc.Resolution
	promotions []domain.Promotion
	promotion  *domain.Promotion
	err        error
}

func (s *stubPromotionSvc) Resolve(_ context.Context, _ string, _ int64) (*promotionsvc.Resolution, error) {
	return s.resolution, s.err
}

func (s *stubPromotionSvc) List(_ context.Context) ([]domain.Promotion, error) {
	return s.promotions, s.err
}

func (s *stubPromotionSvc) Create(_ context.Context, p domain.Promotion) (*domain.Promotion, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.promotion != nil {
		return s.promotion, nil
	}
	p.ID = "promo-new"
	return &p, nil
}

func (s *stubPromotionSvc) Update(_ context.Context, p domain.Promotion) (*domain.Promotion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &p, nil
}

func (s *stubPromotionSvc) Delete(_ context.Context, _ string) error { return s.err }

type stubCheckoutSvc struct {
	quote     *checkoutsvc.Quote
	order     *domain.Order
	quoteErr  error
	submitErr error

	gotCode  string
	gotDraft checkoutsvc.Draft
}

func (s *stubCheckoutSvc) Quote(_ context.Context, _, code string) (*checkoutsvc.Quote, error) {
	s.gotCode = code
	return s.quote, s.quoteErr
}

func (s *stubCheckoutSvc) Submit(_ context.Context, _ string, draft checkoutsvc.Draft) (*domain.Order, error) {
	s.gotDraft = draft
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return s.order, nil
}

type stubOrderSvc struct {
	order  *domain.Order
	orders []domain.Order
	total  int
	err    error

	gotStatus string
}

func (s *stubOrderSvc) Get(_ context.Context, _, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderSvc) ListByCustomer(_ context.Context, _ string) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderSvc) AdminList(_ context.Context, _, _ int) ([]domain.Order, int, error) {
	return s.orders, s.total, s.err
}

func (s *stubOrderSvc) AdminGet(_ context.Context, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderSvc) SetStatus(_ context.Context, _, status string) error {
	s.gotStatus = status
	return s.err
}

type stubFavoriteSvc struct {
	favorites []domain.Favorite
	favorite  *domain.Favorite
	err       error
}

func (s *stubFavoriteSvc) List(_ context.Context, _ string) ([]domain.Favorite, error) {
	return s.favorites, s.err
}

func (s *stubFavoriteSvc) Add(_ context.Context, _, _ string) (*domain.Favorite, error) {
	return s.favorite, s.err
}

func (s *stubFavoriteSvc) Remove(_ context.Context, _, _ string) error { return s.err }

type stubReviewSvc struct {
	reviews []domain.Review
	review  *domain.Review
	err     error
}

func (s *stubReviewSvc) ListByProductSlug(_ context.Context, _ string) ([]domain.Review, error) {
	return s.reviews, s.err
}

func (s *stubReviewSvc) Create(_ context.Context, _, _ string, _ reviewsvc.CreateInput) (*domain.Review, error) {
	return s.review, s.err
}

func testDeps() Deps {
	return Deps{
		CustomerSvc:  &stubCustomerSvc{customer: &domain.Customer{ID: "cust-1", Email: "user@example.com"}},
		CatalogSvc:   &stubCatalogSvc{},
		CartSvc:      &stubCartSvc{},
		PromotionSvc: &stubPromotionSvc{},
		CheckoutSvc:  &stubCheckoutSvc{},
		OrderSvc:     &stubOrderSvc{},
		FavoriteSvc:  &stubFavoriteSvc{},
		ReviewSvc:    &stubReviewSvc{},
	}
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, deps, "*")
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}
