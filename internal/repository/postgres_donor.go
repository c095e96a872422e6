package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pawhaven/rescue-api/internal/domain"
	"github.com/shopspring/decimal"
)

type PostgresDonorRepository struct {
	db *pgxpool.Pool
}

func NewPostgresDonorRepository(db *pgxpool.Pool) *PostgresDonorRepository {
	return &PostgresDonorRepository{
		db: db,
	}
}

func (p *PostgresDonorRepository) Create(ctx context.Context, donor *domain.Donor) error {
	query := `INSERT INTO donors (name, email, phone, notes, stripe_customer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, total_donated, donation_count, created_at`

	err := p.db.QueryRow(ctx,
		query,
		donor.Name,
		donor.Email,
		donor.Phone,
		donor.Notes,
		donor.StripeCustomerID,
	).Scan(&donor.ID, &donor.TotalDonated, &donor.DonationCount, &donor.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDonorAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresDonorRepository) GetById(ctx context.Context, id int) (*domain.Donor, error) {
	query := `SELECT id, name, email, phone, notes, stripe_customer_id, total_donated, donation_count, created_at, updated_at
		FROM donors
		WHERE id = $1`

	return p.getOne(ctx, query, id)
}

func (p *PostgresDonorRepository) GetByEmail(ctx context.Context, email string) (*domain.Donor, error) {
	query := `SELECT id, name, email, phone, notes, stripe_customer_id, total_donated, donation_count, created_at, updated_at
		FROM donors
		WHERE email = $1`

	return p.getOne(ctx, query, email)
}

func (p *PostgresDonorRepository) getOne(ctx context.Context, query string, arg any) (*domain.Donor, error) {
	var donor domain.Donor

	err := p.db.QueryRow(ctx, query, arg).Scan(
		&donor.ID,
		&donor.Name,
		&donor.Email,
		&donor.Phone,
		&donor.Notes,
		&donor.StripeCustomerID,
		&donor.TotalDonated,
		&donor.DonationCount,
		&donor.CreatedAt,
		&donor.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &donor, nil
}

func (p *PostgresDonorRepository) UpdateName(ctx context.Context, id int, name string) error {
	query := `UPDATE donors
		SET name = $1, updated_at = now()
		WHERE id = $2`

	_, err := p.db.Exec(ctx, query, name, id)

	return err
}

func (p *PostgresDonorRepository) IncrementTotals(ctx context.Context, id int, amount decimal.Decimal) error {
	query := `UPDATE donors
		SET total_donated = total_donated + $1,
			donation_count = donation_count + 1,
			updated_at = now()
		WHERE id = $2`

	_, err := p.db.Exec(ctx, query, amount, id)

	return err
}
