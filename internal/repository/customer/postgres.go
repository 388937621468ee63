package customer

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

const customerColumns = `id::text, email, password_hash, COALESCE(full_name, ''), COALESCE(phone, ''),
	COALESCE(address, ''), COALESCE(city, ''), COALESCE(district, ''), is_admin, created_at`

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO customers (email, password_hash, full_name, phone, address, city, district, is_admin)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING `+customerColumns,
		c.Email, c.PasswordHash, c.FullName, c.Phone, c.Address, c.City, c.District, c.IsAdmin)
	out, err := scanCustomer(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	return scanCustomer(row)
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
	return scanCustomer(row)
}

func (r *postgresRepo) UpdateProfile(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE customers
SET full_name = $2, phone = $3, address = $4, city = $5, district = $6
WHERE id = $1
RETURNING `+customerColumns,
		c.ID, c.FullName, c.Phone, c.Address, c.City, c.District)
	return scanCustomer(row)
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID,
		&c.Email,
		&c.PasswordHash,
		&c.FullName,
		&c.Phone,
		&c.Address,
		&c.City,
		&c.District,
		&c.IsAdmin,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
