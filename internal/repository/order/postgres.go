package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"jewelstore/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const orderColumns = `id::text, number, customer_id::text, status, subtotal, discount, shipping_fee, total,
	COALESCE(promotion_code, ''), recipient_name, recipient_phone, recipient_address, recipient_city,
	recipient_district, COALESCE(recipient_note, ''), created_at`

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Conditional decrement: zero rows means not enough stock, which keeps
	// concurrent submissions from overselling without explicit locks.
	for _, line := range in.Lines {
		cmd, err := tx.Exec(ctx, `
UPDATE products
SET stock = stock - $1
WHERE id = $2 AND stock >= $1
`, line.Quantity, line.ProductID)
		if err != nil {
			return nil, err
		}
		if cmd.RowsAffected() == 0 {
			return nil, domain.ErrInsufficientStock
		}
	}

	var promotionCode *string
	if in.PromotionCode != "" {
		promotionCode = &in.PromotionCode
		// Redemptions are counted only here, at confirmation time; previews
		// never burn a use.
		if _, err := tx.Exec(ctx, `
UPDATE promotions
SET redemptions = redemptions + 1
WHERE code = $1
`, in.PromotionCode); err != nil {
			return nil, err
		}
	}

	var out domain.Order
	row := tx.QueryRow(ctx, `
INSERT INTO orders (number, customer_id, status, subtotal, discount, shipping_fee, total, promotion_code,
	recipient_name, recipient_phone, recipient_address, recipient_city, recipient_district, recipient_note)
VALUES ($1, $2, 'pending', $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING `+orderColumns,
		in.Number, in.CustomerID, in.Subtotal, in.Discount, in.ShippingFee, in.Total, promotionCode,
		in.Recipient.Name, in.Recipient.Phone, in.Recipient.Address, in.Recipient.City,
		in.Recipient.District, nullable(in.Recipient.Note),
	)
	if err := scanOrderRow(row, &out); err != nil {
		return nil, err
	}

	for _, line := range in.Lines {
		var ol domain.OrderLine
		if err := tx.QueryRow(ctx, `
INSERT INTO order_lines (order_id, product_id, name, size, quantity, unit_price, total)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id::text
`, out.ID, line.ProductID, line.Name, line.Size, line.Quantity, line.UnitPrice, line.Total).Scan(&ol.ID); err != nil {
			return nil, err
		}
		ol.OrderID = out.ID
		ol.ProductID = line.ProductID
		ol.Name = line.Name
		ol.Size = line.Size
		ol.Quantity = line.Quantity
		ol.UnitPrice = line.UnitPrice
		ol.Total = line.Total
		out.Lines = append(out.Lines, ol)
	}

	if in.CartID != "" {
		if _, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE cart_id = $1`, in.CartID); err != nil {
			return nil, err
		}
		if _, err := tx.Exec(ctx, `UPDATE carts SET state = 'ordered' WHERE id = $1`, in.CartID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var out domain.Order
	row := r.pool.QueryRow(ctx, `
SELECT `+orderColumns+`
FROM orders
WHERE id = $1
`, id)
	if err := scanOrderRow(row, &out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadLines(ctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+orderColumns+`
FROM orders
WHERE customer_id = $1
ORDER BY created_at DESC
`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *postgresRepo) List(ctx context.Context, limit, offset int) ([]domain.Order, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+orderColumns+`
FROM orders
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *postgresRepo) SetStatus(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) loadLines(ctx context.Context, o *domain.Order) error {
	rows, err := r.pool.Query(ctx, `
SELECT id::text, order_id::text, product_id::text, name, size, quantity, unit_price, total
FROM order_lines
WHERE order_id = $1
ORDER BY id ASC
`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.ProductID,
			&line.Name,
			&line.Size,
			&line.Quantity,
			&line.UnitPrice,
			&line.Total,
		); err != nil {
			return err
		}
		o.Lines = append(o.Lines, line)
	}
	return rows.Err()
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrderRow(rows, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func scanOrderRow(row pgx.Row, o *domain.Order) error {
	return row.Scan(
		&o.ID,
		&o.Number,
		&o.CustomerID,
		&o.Status,
		&o.Subtotal,
		&o.Discount,
		&o.ShippingFee,
		&o.Total,
		&o.PromotionCode,
		&o.Recipient.Name,
		&o.Recipient.Phone,
		&o.Recipient.Address,
		&o.Recipient.City,
		&o.Recipient.District,
		&o.Recipient.Note,
		&o.CreatedAt,
	)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
