package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"jewelstore/internal/service/catalog"
)

type productSeed struct {
	Category    string
	Name        string
	Description string
	Price       int64
	Stock       int
	Sizes       []string
	Images      []string
}

type promotionSeed struct {
	Code        string
	Name        string
	Percent     int
	MinSubtotal int64
	StartsAt    time.Time
	EndsAt      time.Time
}

// Apply inserts demo data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := map[string]string{}
	for _, name := range []string{"Nhẫn", "Dây chuyền", "Bông tai", "Lắc tay"} {
		id, err := ensureCategory(ctx, pool, name)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", name, err)
		}
		categories[name] = id
	}

	products := []productSeed{
		{
			Category:    "Nhẫn",
			Name:        "Nhẫn Vàng 18K Đính Đá",
			Description: "Nhẫn vàng 18K đính đá CZ, kiểu dáng thanh mảnh",
			Price:       4_500_000,
			Stock:       12,
			Sizes:       []string{"6", "7", "8", "9"},
			Images:      []string{"/images/ring-18k-cz.jpg"},
		},
		{
			Category:    "Nhẫn",
			Name:        "Nhẫn Bạc Đơn Giản",
			Description: "Nhẫn bạc 925 trơn, đeo hằng ngày",
			Price:       350_000,
			Stock:       40,
			Sizes:       []string{"6", "7", "8"},
			Images:      []string{"/images/ring-silver-plain.jpg"},
		},
		{
			Category:    "Dây chuyền",
			Name:        "Dây Chuyền Vàng Trắng",
			Description: "Dây chuyền vàng trắng 14K, dài 45cm",
			Price:       6_200_000,
			Stock:       8,
			Images:      []string{"/images/necklace-white-gold.jpg"},
		},
		{
			Category:    "Bông tai",
			Name:        "Bông Tai Ngọc Trai",
			Description: "Bông tai ngọc trai nước ngọt, chốt bạc",
			Price:       1_020_000,
			Stock:       25,
			Images:      []string{"/images/earring-pearl.jpg"},
		},
		{
			Category:    "Lắc tay",
			Name:        "Lắc Tay Bạc Charm",
			Description: "Lắc tay bạc 925 kèm charm trái tim",
			Price:       500_000,
			Stock:       30,
			Images:      []string{"/images/bracelet-charm.jpg"},
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, categories[p.Category], p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	now := time.Now()
	promotions := []promotionSeed{
		{
			Code:        "WELCOME10",
			Name:        "Giảm 10% đơn đầu tiên",
			Percent:     10,
			MinSubtotal: 500_000,
			StartsAt:    now.AddDate(0, -1, 0),
			EndsAt:      now.AddDate(0, 2, 0),
		},
		{
			Code:        "TET25",
			Name:        "Khuyến mãi Tết",
			Percent:     25,
			MinSubtotal: 2_000_000,
			StartsAt:    now.AddDate(0, 1, 0),
			EndsAt:      now.AddDate(0, 2, 0),
		},
	}
	for _, p := range promotions {
		if err := upsertPromotion(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert promotion %s: %w", p.Code, err)
		}
	}

	if err := ensureAdmin(ctx, pool, "admin@jewelstore.local", "Admin12345"); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	return nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name string) (string, error) {
	const q = `
INSERT INTO categories (name, slug)
VALUES ($1, $2)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, name, catalog.Slugify(name)).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, categoryID string, p productSeed) error {
	const q = `
INSERT INTO products (category_id, name, slug, description, price, stock, sizes, images)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (slug) DO UPDATE
SET category_id = EXCLUDED.category_id,
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    stock = EXCLUDED.stock,
    sizes = EXCLUDED.sizes,
    images = EXCLUDED.images
`
	sizes := p.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	_, err := pool.Exec(ctx, q, categoryID, p.Name, catalog.Slugify(p.Name), p.Description, p.Price, p.Stock, sizes, images)
	return err
}

func upsertPromotion(ctx context.Context, pool *pgxpool.Pool, p promotionSeed) error {
	const q = `
INSERT INTO promotions (code, name, percent, min_subtotal, starts_at, ends_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (code) DO UPDATE
SET name = EXCLUDED.name,
    percent = EXCLUDED.percent,
    min_subtotal = EXCLUDED.min_subtotal,
    starts_at = EXCLUDED.starts_at,
    ends_at = EXCLUDED.ends_at
`
	_, err := pool.Exec(ctx, q, p.Code, p.Name, p.Percent, p.MinSubtotal, p.StartsAt, p.EndsAt)
	return err
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO customers (email, password_hash, full_name, is_admin)
VALUES ($1, $2, 'Store Admin', TRUE)
ON CONFLICT (email) DO UPDATE SET is_admin = TRUE
`
	_, err = pool.Exec(ctx, q, email, string(hash))
	return err
}
