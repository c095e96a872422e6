package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pawhaven/rescue-api/internal/domain"
)

type PostgresAdoptionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAdoptionRepository(db *pgxpool.Pool) *PostgresAdoptionRepository {
	return &PostgresAdoptionRepository{
		db: db,
	}
}

func (p *PostgresAdoptionRepository) Create(ctx context.Context, application *domain.AdoptionApplication) error {
	query := `INSERT INTO adoption_applications
			(dog_id, applicant_name, applicant_email, applicant_phone, home_description, has_yard, other_pets, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	return p.db.QueryRow(ctx,
		query,
		application.DogID,
		application.ApplicantName,
		application.ApplicantEmail,
		application.ApplicantPhone,
		application.HomeDescription,
		application.HasYard,
		application.OtherPets,
		application.Status,
	).Scan(&application.ID, &application.CreatedAt)
}

func (p *PostgresAdoptionRepository) GetById(ctx context.Context, id int) (*domain.AdoptionApplication, error) {
	query := `SELECT id, dog_id, applicant_name, applicant_email, applicant_phone, home_description,
			has_yard, other_pets, status, created_at, updated_at
		FROM adoption_applications
		WHERE id = $1`

	var application domain.AdoptionApplication

	err := p.db.QueryRow(ctx, query, id).Scan(
		&application.ID,
		&application.DogID,
		&application.ApplicantName,
		&application.ApplicantEmail,
		&application.ApplicantPhone,
		&application.HomeDescription,
		&application.HasYard,
		&application.OtherPets,
		&application.Status,
		&application.CreatedAt,
		&application.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &application, nil
}
