package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pawhaven/rescue-api/internal/domain"
)

type PostgresDogRepository struct {
	db *pgxpool.Pool
}

func NewPostgresDogRepository(db *pgxpool.Pool) *PostgresDogRepository {
	return &PostgresDogRepository{
		db: db,
	}
}

func (p *PostgresDogRepository) GetAll(ctx context.Context, filters domain.DogFilters) ([]*domain.Dog, *domain.Metadata, error) {
	query := fmt.Sprintf(`SELECT count(*) OVER(), id, name, breed, sex, age_months, size, description, photo_url, status, created_at, updated_at
		FROM dogs
		WHERE ((to_tsvector('english', name || ' ' || breed || ' ' || description) @@ plainto_tsquery('english', $1))
			OR $1 = '')
			AND (status = $2 OR $2 = '')
		ORDER BY %s %s
		LIMIT $3 OFFSET $4`, filters.SortColumn(), filters.SortDirection())

	rows, err := p.db.Query(ctx, query, filters.Term, filters.Status, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	dogs := []*domain.Dog{}

	for rows.Next() {
		var dog domain.Dog

		err := rows.Scan(
			&totalRecords,
			&dog.ID,
			&dog.Name,
			&dog.Breed,
			&dog.Sex,
			&dog.AgeMonths,
			&dog.Size,
			&dog.Description,
			&dog.PhotoUrl,
			&dog.Status,
			&dog.CreatedAt,
			&dog.UpdatedAt,
		)

		if err != nil {
			return nil, nil, err
		}

		dogs = append(dogs, &dog)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return dogs, metadata, nil
}

func (p *PostgresDogRepository) GetById(ctx context.Context, id int) (*domain.Dog, error) {
	query := `SELECT id, name, breed, sex, age_months, size, description, photo_url, status, created_at, updated_at
		FROM dogs
		WHERE id = $1`

	var dog domain.Dog

	err := p.db.QueryRow(ctx, query, id).Scan(
		&dog.ID,
		&dog.Name,
		&dog.Breed,
		&dog.Sex,
		&dog.AgeMonths,
		&dog.Size,
		&dog.Description,
		&dog.PhotoUrl,
		&dog.Status,
		&dog.CreatedAt,
		&dog.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &dog, nil
}
