package favorite

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"jewelstore/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Favorite, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id::text, customer_id::text, product_id::text, created_at
FROM favorites
WHERE customer_id = $1
ORDER BY created_at DESC
`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.ID, &f.CustomerID, &f.ProductID, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Add(ctx context.Context, customerID, productID string) (*domain.Favorite, error) {
	var f domain.Favorite
	err := r.pool.QueryRow(ctx, `
INSERT INTO favorites (customer_id, product_id)
VALUES ($1, $2)
RETURNING id::text, customer_id::text, product_id::text, created_at
`, customerID, productID).Scan(&f.ID, &f.CustomerID, &f.ProductID, &f.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &f, nil
}

func (r *postgresRepo) Remove(ctx context.Context, customerID, productID string) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM favorites
WHERE customer_id = $1 AND product_id = $2
`, customerID, productID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
