package catalog

import (
	"context"
	"strings"

	"jewelstore/internal/domain"
	productrepo "jewelstore/internal/repository/product"
)

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// Service serves catalog reads and admin catalog writes. Listing is paged
// server-side so every screen shares one query path instead of refetching
// and filtering client-side.
type Service struct {
	products   productrepo.Repository
	categories categoryRepo
}

func New(products productrepo.Repository, categories categoryRepo) *Service {
	return &Service{products: products, categories: categories}
}

// ProductPage is a paged product listing.
type ProductPage struct {
	Items  []domain.Product `json:"items"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

func (s *Service) ListProducts(ctx context.Context, f productrepo.ListFilter) (*ProductPage, error) {
	items, total, err := s.products.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Product{}
	}
	return &ProductPage{Items: items, Total: total, Limit: f.Limit, Offset: f.Offset}, nil
}

func (s *Service) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.products.GetBySlug(ctx, strings.TrimSpace(slug))
}

func (s *Service) ListProductsByCategorySlug(ctx context.Context, slug string, limit, offset int) (*ProductPage, error) {
	cat, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.ListProducts(ctx, productrepo.ListFilter{CategoryID: cat.ID, Limit: limit, Offset: offset})
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []domain.Category{}
	}
	return cats, nil
}

func (s *Service) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Name)
	}
	return s.products.Create(ctx, p)
}

func (s *Service) UpdateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	return s.products.Update(ctx, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

func (s *Service) CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, domain.Invalid("name required")
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return s.categories.Create(ctx, c)
}

func (s *Service) UpdateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, domain.Invalid("name required")
	}
	return s.categories.Update(ctx, c)
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

func validateProduct(p domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Invalid("name required")
	}
	if p.CategoryID == "" {
		return domain.Invalid("categoryId required")
	}
	if p.Price < 0 {
		return domain.Invalid("price must not be negative")
	}
	if p.Stock < 0 {
		return domain.Invalid("stock must not be negative")
	}
	return nil
}

// Slugify lowercases a name and replaces runs of non-alphanumerics with
// single dashes.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
