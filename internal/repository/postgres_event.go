package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pawhaven/rescue-api/internal/domain"
)

type PostgresEventRepository struct {
	db *pgxpool.Pool
}

func NewPostgresEventRepository(db *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{
		db: db,
	}
}

func (p *PostgresEventRepository) GetUpcoming(
	ctx context.Context,
	pagination domain.Pagination) ([]*domain.FundraisingEvent, *domain.Metadata, error) {

	query := `SELECT count(*) OVER(), id, title, description, location, starts_at, ticket_url, created_at
		FROM fundraising_events
		WHERE starts_at > now()
		ORDER BY starts_at
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	events := []*domain.FundraisingEvent{}

	for rows.Next() {
		var event domain.FundraisingEvent

		err := rows.Scan(
			&totalRecords,
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Location,
			&event.StartsAt,
			&event.TicketUrl,
			&event.CreatedAt,
		)

		if err != nil {
			return nil, nil, err
		}

		events = append(events, &event)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return events, metadata, nil
}
