package httpserver

import (
	"context"

	"jewelstore/internal/domain"
	productrepo "jewelstore/internal/repository/product"
	cartsvc "jewelstore/internal/service/cart"
	catalogsvc "jewelstore/internal/service/catalog"
	checkoutsvc "jewelstore/internal/service/checkout"
	customersvc "jewelstore/internal/service/customer"
	promotionsvc "jewelstore/internal/service/promotion"
	reviewsvc "jewelstore/internal/service/review"
)

// Deps collects the services the router needs. Handlers depend on the
// narrow interfaces below so tests can stub them.
type Deps struct {
	CustomerSvc  CustomerService
	CatalogSvc   CatalogService
	CartSvc      CartService
	PromotionSvc PromotionService
	CheckoutSvc  CheckoutService
	OrderSvc     OrderService
	FavoriteSvc  FavoriteService
	ReviewSvc    ReviewService
}

type CustomerService interface {
	Signup(ctx context.Context, in customersvc.SignupInput) (*domain.Customer, error)
	Login(ctx context.Context, email, password string) (*domain.Customer, string, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.Customer, error)
	Logout(ctx context.Context, token string) error
	UpdateProfile(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	AccessTTLSeconds() int
}

type CatalogService interface {
	ListProducts(ctx context.Context, f productrepo.ListFilter) (*catalogsvc.ProductPage, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListProductsByCategorySlug(ctx context.Context, slug string, limit, offset int) (*catalogsvc.ProductPage, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type CartService interface {
	Get(ctx context.Context, customerID string) (*domain.Cart, error)
	AddLine(ctx context.Context, customerID string, in cartsvc.AddLineInput) (*domain.Cart, error)
	ChangeLineQuantity(ctx context.Context, customerID, lineID string, quantity int) (*domain.Cart, error)
	RemoveLine(ctx context.Context, customerID, lineID string) (*domain.Cart, error)
	Clear(ctx context.Context, customerID string) error
}

type PromotionService interface {
	Resolve(ctx context.Context, code string, subtotal int64) (*promotionsvc.Resolution, error)
	List(ctx context.Context) ([]domain.Promotion, error)
	Create(ctx context.Context, p domain.Promotion) (*domain.Promotion, error)
	Update(ctx context.Context, p domain.Promotion) (*domain.Promotion, error)
	Delete(ctx context.Context, id string) error
}

type CheckoutService interface {
	Quote(ctx context.Context, customerID, promotionCode string) (*checkoutsvc.Quote, error)
	Submit(ctx context.Context, customerID string, draft checkoutsvc.Draft) (*domain.Order, error)
}

type OrderService interface {
	Get(ctx context.Context, customerID, orderID string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	AdminList(ctx context.Context, limit, offset int) ([]domain.Order, int, error)
	AdminGet(ctx context.Context, orderID string) (*domain.Order, error)
	SetStatus(ctx context.Context, orderID, status string) error
}

type FavoriteService interface {
	List(ctx context.Context, customerID string) ([]domain.Favorite, error)
	Add(ctx context.Context, customerID, productID string) (*domain.Favorite, error)
	Remove(ctx context.Context, customerID, productID string) error
}

type ReviewService interface {
	ListByProductSlug(ctx context.Context, slug string) ([]domain.Review, error)
	Create(ctx context.Context, customerID, productSlug string, in reviewsvc.CreateInput) (*domain.Review, error)
}
