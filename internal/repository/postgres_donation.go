package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pawhaven/rescue-api/internal/domain"
	"github.com/shopspring/decimal"
)

type PostgresDonationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresDonationRepository(db *pgxpool.Pool) *PostgresDonationRepository {
	return &PostgresDonationRepository{
		db: db,
	}
}

func (p *PostgresDonationRepository) Create(ctx context.Context, donation *domain.Donation) error {
	query := `INSERT INTO donations (donor_id, donor_name, donor_email, amount, type, status, stripe_customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	return p.db.QueryRow(ctx,
		query,
		donation.DonorID,
		donation.DonorName,
		donation.DonorEmail,
		donation.Amount,
		donation.Type,
		donation.Status,
		donation.StripeCustomerID,
	).Scan(&donation.ID, &donation.CreatedAt)
}

func (p *PostgresDonationRepository) GetById(ctx context.Context, id int) (*domain.Donation, error) {
	query := `SELECT id, donor_id, donor_name, donor_email, amount, type, status,
			stripe_customer_id, stripe_checkout_session_id, stripe_subscription_id, created_at, updated_at
		FROM donations
		WHERE id = $1`

	var donation domain.Donation

	err := p.db.QueryRow(ctx, query, id).Scan(
		&donation.ID,
		&donation.DonorID,
		&donation.DonorName,
		&donation.DonorEmail,
		&donation.Amount,
		&donation.Type,
		&donation.Status,
		&donation.StripeCustomerID,
		&donation.StripeCheckoutSessionID,
		&donation.StripeSubscriptionID,
		&donation.CreatedAt,
		&donation.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &donation, nil
}

func (p *PostgresDonationRepository) AttachCheckoutSession(
	ctx context.Context,
	id int,
	checkoutSessionID, stripeCustomerID string) error {

	query := `UPDATE donations
		SET stripe_checkout_session_id = $1, stripe_customer_id = $2, updated_at = now()
		WHERE id = $3`

	_, err := p.db.Exec(ctx, query, checkoutSessionID, stripeCustomerID, id)

	return err
}

func (p *PostgresDonationRepository) UpdateStatus(ctx context.Context, id int, status domain.DonationStatus) error {
	query := `UPDATE donations
		SET status = $1, updated_at = now()
		WHERE id = $2`

	_, err := p.db.Exec(ctx, query, status, id)

	return err
}

func (p *PostgresDonationRepository) Complete(ctx context.Context, id int, subscriptionID *string) error {
	query := `UPDATE donations
		SET status = $1,
			stripe_subscription_id = COALESCE($2, stripe_subscription_id),
			updated_at = now()
		WHERE id = $3`

	_, err := p.db.Exec(ctx, query, domain.DonationStatusCompleted, subscriptionID, id)

	return err
}

func (p *PostgresDonationRepository) GetAllBySubscriptionId(
	ctx context.Context,
	subscriptionID string) ([]*domain.Donation, error) {

	query := `SELECT id, donor_id, donor_name, donor_email, amount, type, status,
			stripe_customer_id, stripe_checkout_session_id, stripe_subscription_id, created_at, updated_at
		FROM donations
		WHERE stripe_subscription_id = $1
		ORDER BY id`

	rows, err := p.db.Query(ctx, query, subscriptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	donations := []*domain.Donation{}

	for rows.Next() {
		var donation domain.Donation

		err := rows.Scan(
			&donation.ID,
			&donation.DonorID,
			&donation.DonorName,
			&donation.DonorEmail,
			&donation.Amount,
			&donation.Type,
			&donation.Status,
			&donation.StripeCustomerID,
			&donation.StripeCheckoutSessionID,
			&donation.StripeSubscriptionID,
			&donation.CreatedAt,
			&donation.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		donations = append(donations, &donation)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return donations, nil
}

func (p *PostgresDonationRepository) SumCompletedByDonorId(
	ctx context.Context,
	donorID int) (decimal.Decimal, int, error) {

	query := `SELECT COALESCE(SUM(amount), 0), COUNT(*)
		FROM donations
		WHERE donor_id = $1 AND status = $2`

	var (
		total decimal.Decimal
		count int
	)

	err := p.db.QueryRow(ctx, query, donorID, domain.DonationStatusCompleted).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, err
	}

	return total, count, nil
}
