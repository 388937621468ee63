package review

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"jewelstore/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, `
SELECT r.id::text, r.product_id::text, r.customer_id::text, COALESCE(c.full_name, ''), r.rating, COALESCE(r.comment, ''), r.created_at
FROM reviews r
JOIN customers c ON c.id = r.customer_id
WHERE r.product_id = $1
ORDER BY r.created_at DESC
`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.CustomerID, &rv.CustomerName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	err := r.pool.QueryRow(ctx, `
INSERT INTO reviews (product_id, customer_id, rating, comment)
VALUES ($1, $2, $3, $4)
RETURNING id::text, created_at
`, rv.ProductID, rv.CustomerID, rv.Rating, nullable(rv.Comment)).Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
