package cart

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

const cartColumns = `id::text, customer_id::text, state, created_at`

func (r *postgresRepo) Create(ctx context.Context, customerID string) (*domain.Cart, error) {
	const q = `
INSERT INTO carts (customer_id, state)
VALUES ($1, 'active')
RETURNING ` + cartColumns
	var cart domain.Cart
	if err := r.pool.QueryRow(ctx, q, customerID).Scan(
		&cart.ID,
		&cart.CustomerID,
		&cart.State,
		&cart.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Cart, error) {
	return r.fetchCart(ctx, `
SELECT `+cartColumns+`
FROM carts
WHERE id = $1
`, id)
}

func (r *postgresRepo) GetActiveByCustomer(ctx context.Context, customerID string) (*domain.Cart, error) {
	return r.fetchCart(ctx, `
SELECT `+cartColumns+`
FROM carts
WHERE customer_id = $1 AND state = 'active'
ORDER BY created_at DESC
LIMIT 1
`, customerID)
}

// AddLine upserts a line keyed by product+size: an existing line gets its
// quantity bumped, otherwise a new line is inserted at the price captured now.
func (r *postgresRepo) AddLine(ctx context.Context, cartID string, product domain.Product, size *string, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var lineID string
	var existingQty int
	var unitPrice int64
	err = tx.QueryRow(ctx, `
SELECT id::text, quantity, unit_price
FROM cart_lines
WHERE cart_id = $1 AND product_id = $2 AND size IS NOT DISTINCT FROM $3
`, cartID, product.ID, size).Scan(&lineID, &existingQty, &unitPrice)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	if err == nil {
		newQty := existingQty + quantity
		newTotal := unitPrice * int64(newQty)
		if _, err := tx.Exec(ctx, `
UPDATE cart_lines
SET quantity = $1, total = $2
WHERE id = $3
`, newQty, newTotal, lineID); err != nil {
			return err
		}
	} else {
		unitPrice = product.Price
		total := unitPrice * int64(quantity)
		if _, err := tx.Exec(ctx, `
INSERT INTO cart_lines (cart_id, product_id, size, quantity, unit_price, total)
VALUES ($1, $2, $3, $4, $5, $6)
`, cartID, product.ID, size, quantity, unitPrice, total); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) ChangeLineQuantity(ctx context.Context, cartID, lineID string, quantity int) error {
	if quantity <= 0 {
		return r.RemoveLine(ctx, cartID, lineID)
	}
	cmd, err := r.pool.Exec(ctx, `
UPDATE cart_lines
SET quantity = $1, total = unit_price * $1
WHERE id = $2 AND cart_id = $3
`, quantity, lineID, cartID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) RemoveLine(ctx context.Context, cartID, lineID string) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM cart_lines
WHERE id = $1 AND cart_id = $2
`, lineID, cartID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Clear(ctx context.Context, cartID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_lines WHERE cart_id = $1`, cartID)
	return err
}

func (r *postgresRepo) fetchCart(ctx context.Context, cartQuery string, args ...interface{}) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, cartQuery, args...).Scan(
		&cart.ID,
		&cart.CustomerID,
		&cart.State,
		&cart.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const linesQuery = `
SELECT id::text, cart_id::text, product_id::text, size, quantity, unit_price, total, created_at
FROM cart_lines
WHERE cart_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, linesQuery, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(
			&line.ID,
			&line.CartID,
			&line.ProductID,
			&line.Size,
			&line.Quantity,
			&line.UnitPrice,
			&line.Total,
			&line.CreatedAt,
		); err != nil {
			return nil, err
		}
		cart.Lines = append(cart.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &cart, nil
}
