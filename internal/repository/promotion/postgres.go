package promotion

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

const promotionColumns = `id::text, code, name, percent, min_subtotal, starts_at, ends_at, redemptions, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Promotion, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+promotionColumns+`
FROM promotions
ORDER BY starts_at DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Promotion
	for rows.Next() {
		var p domain.Promotion
		if err := scanPromotion(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	var p domain.Promotion
	row := r.pool.QueryRow(ctx, `
SELECT `+promotionColumns+`
FROM promotions
WHERE code = $1
`, code)
	if err := scanPromotion(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Promotion) (*domain.Promotion, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO promotions (code, name, percent, min_subtotal, starts_at, ends_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+promotionColumns, p.Code, p.Name, p.Percent, p.MinSubtotal, p.StartsAt, p.EndsAt)
	if err := scanPromotion(row, &p); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Promotion) (*domain.Promotion, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE promotions
SET code = $2, name = $3, percent = $4, min_subtotal = $5, starts_at = $6, ends_at = $7
WHERE id = $1
RETURNING `+promotionColumns, p.ID, p.Code, p.Name, p.Percent, p.MinSubtotal, p.StartsAt, p.EndsAt)
	if err := scanPromotion(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPromotion(row pgx.Row, p *domain.Promotion) error {
	return row.Scan(
		&p.ID,
		&p.Code,
		&p.Name,
		&p.Percent,
		&p.MinSubtotal,
		&p.StartsAt,
		&p.EndsAt,
		&p.Redemptions,
		&p.CreatedAt,
	)
}
