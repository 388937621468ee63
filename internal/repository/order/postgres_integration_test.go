package order

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"jewelstore/internal/domain"
	"jewelstore/internal/migrate"
)

func orderPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Fatalf("ping db: %v", err)
	}
	return pool
}

func resetOrderTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(ctx, `TRUNCATE order_lines, orders, cart_lines, carts, promotions, products, categories, tokens, customers RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func TestCreate_IntegrationDecrementsStockAndClosesCart(t *testing.T) {
	ctx := context.Background()
	pool := orderPool(ctx, t)
	defer pool.Close()
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetOrderTables(ctx, t, pool)

	var customerID, categoryID, productID, cartID string
	if err := pool.QueryRow(ctx, `INSERT INTO customers (email, password_hash) VALUES ('buyer@example.com', 'x') RETURNING id::text`).Scan(&customerID); err != nil {
		t.Fatalf("insert customer: %v", err)
	}
	if err := pool.QueryRow(ctx, `INSERT INTO categories (name, slug) VALUES ('Nhẫn', 'nh-n') RETURNING id::text`).Scan(&categoryID); err != nil {
		t.Fatalf("insert category: %v", err)
	}
	if err := pool.QueryRow(ctx, `INSERT INTO products (category_id, name, slug, price, stock) VALUES ($1, 'Nhẫn Bạc', 'nh-n-b-c', 350000, 2) RETURNING id::text`, categoryID).Scan(&productID); err != nil {
		t.Fatalf("insert product: %v", err)
	}
	if _, err := pool.Exec(ctx, `INSERT INTO promotions (code, name, percent, starts_at, ends_at) VALUES ('SALE10', 'Sale', 10, NOW() - INTERVAL '1 day', NOW() + INTERVAL '1 day')`); err != nil {
		t.Fatalf("insert promotion: %v", err)
	}
	if err := pool.QueryRow(ctx, `INSERT INTO carts (customer_id) VALUES ($1) RETURNING id::text`, customerID).Scan(&cartID); err != nil {
		t.Fatalf("insert cart: %v", err)
	}
	if _, err := pool.Exec(ctx, `INSERT INTO cart_lines (cart_id, product_id, quantity, unit_price, total) VALUES ($1, $2, 2, 350000, 700000)`, cartID, productID); err != nil {
		t.Fatalf("insert cart line: %v", err)
	}

	repo := NewPostgres(pool)
	created, err := repo.Create(ctx, CreateInput{
		Number:        "JW-TEST0001",
		CustomerID:    customerID,
		CartID:        cartID,
		Subtotal:      700_000,
		Discount:      70_000,
		ShippingFee:   20_000,
		Total:         650_000,
		PromotionCode: "SALE10",
		Recipient: domain.Recipient{
			Name:     "An",
			Phone:    "0901234567",
			Address:  "1 Lê Lợi",
			City:     "HCM",
			District: "Q1",
		},
		Lines: []CreateLine{{
			ProductID: productID,
			Name:      "Nhẫn Bạc",
			Quantity:  2,
			UnitPrice: 350_000,
			Total:     700_000,
		}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if created.Status != domain.OrderPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
	if created.Total != 650_000 {
		t.Fatalf("expected total 650000, got %d", created.Total)
	}

	var stock int
	if err := pool.QueryRow(ctx, `SELECT stock FROM products WHERE id = $1`, productID).Scan(&stock); err != nil {
		t.Fatalf("read stock: %v", err)
	}
	if stock != 0 {
		t.Fatalf("expected stock 0 after order, got %d", stock)
	}

	var redemptions int
	if err := pool.QueryRow(ctx, `SELECT redemptions FROM promotions WHERE code = 'SALE10'`).Scan(&redemptions); err != nil {
		t.Fatalf("read redemptions: %v", err)
	}
	if redemptions != 1 {
		t.Fatalf("expected 1 redemption, got %d", redemptions)
	}

	var cartState string
	if err := pool.QueryRow(ctx, `SELECT state FROM carts WHERE id = $1`, cartID).Scan(&cartState); err != nil {
		t.Fatalf("read cart state: %v", err)
	}
	if cartState != domain.CartStateOrdered {
		t.Fatalf("expected cart ordered, got %q", cartState)
	}

	var lineCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM cart_lines WHERE cart_id = $1`, cartID).Scan(&lineCount); err != nil {
		t.Fatalf("count cart lines: %v", err)
	}
	if lineCount != 0 {
		t.Fatalf("expected cart lines removed, got %d", lineCount)
	}
}

func TestCreate_IntegrationInsufficientStockRollsBack(t *testing.T) {
	ctx := context.Background()
	pool := orderPool(ctx, t)
	defer pool.Close()
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetOrderTables(ctx, t, pool)

	var customerID, categoryID, productID, cartID string
	if err := pool.QueryRow(ctx, `INSERT INTO customers (email, password_hash) VALUES ('buyer@example.com', 'x') RETURNING id::text`).Scan(&customerID); err != nil {
		t.Fatalf("insert customer: %v", err)
	}
	if err := pool.QueryRow(ctx, `INSERT INTO categories (name, slug) VALUES ('Nhẫn', 'nh-n') RETURNING id::text`).Scan(&categoryID); err != nil {
		t.Fatalf("insert category: %v", err)
	}
	if err := pool.QueryRow(ctx, `INSERT INTO products (category_id, name, slug, price, stock) VALUES ($1, 'Nhẫn Bạc', 'nh-n-b-c', 350000, 1) RETURNING id::text`, categoryID).Scan(&productID); err != nil {
		t.Fatalf("insert product: %v", err)
	}
	if err := pool.QueryRow(ctx, `INSERT INTO carts (customer_id) VALUES ($1) RETURNING id::text`, customerID).Scan(&cartID); err != nil {
		t.Fatalf("insert cart: %v", err)
	}

	repo := NewPostgres(pool)
	_, err := repo.Create(ctx, CreateInput{
		Number:     "JW-TEST0002",
		CustomerID: customerID,
		CartID:     cartID,
		Subtotal:   700_000,
		Total:      720_000,
		Recipient: domain.Recipient{
			Name:     "An",
			Phone:    "0901234567",
			Address:  "1 Lê Lợi",
			City:     "HCM",
			District: "Q1",
		},
		Lines: []CreateLine{{
			ProductID: productID,
			Name:      "Nhẫn Bạc",
			Quantity:  2,
			UnitPrice: 350_000,
			Total:     700_000,
		}},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	var stock int
	if err := pool.QueryRow(ctx, `SELECT stock FROM products WHERE id = $1`, productID).Scan(&stock); err != nil {
		t.Fatalf("read stock: %v", err)
	}
	if stock != 1 {
		t.Fatalf("expected stock untouched at 1, got %d", stock)
	}

	var orderCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&orderCount); err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("expected no orders persisted, got %d", orderCount)
	}
}
