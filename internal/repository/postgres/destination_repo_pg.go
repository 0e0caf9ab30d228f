package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/Travel_Diary_BackEnd/internal/domain"
	"github.com/njprem/Travel_Diary_BackEnd/internal/repository/ports"
)

var _ ports.DestinationStore = (*DestinationRepository)(nil)

type DestinationRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewDestinationRepo(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db, now: time.Now}
}

func (r *DestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	const query = `
		SELECT id, name, country, best_months, festivals, lat, lng, image_query
		FROM user_destination
		ORDER BY created_at DESC, id DESC
	`

	destinations := []domain.Destination{}
	if err := r.db.SelectContext(ctx, &destinations, query); err != nil {
		return nil, fmt.Errorf("list user destinations: %w", err)
	}
	for i := range destinations {
		destinations[i].IsUserAdded = true
	}
	return destinations, nil
}

// Two concurrent inserts can compute the same id; the loser retries once with a fresh MAX(id).
const maxInsertAttempts = 2

func (r *DestinationRepository) Append(ctx context.Context, candidate domain.Destination) (*domain.Destination, error) {
	for attempt := 1; ; attempt++ {
		dest, err := r.insert(ctx, candidate)
		switch {
		case err == nil:
			dest.IsUserAdded = true
			return dest, nil
		case errors.Is(err, sql.ErrNoRows), isDestinationConflict(err):
			return nil, domain.ErrDestinationExists
		case isUniqueViolation(err) && attempt < maxInsertAttempts:
			continue
		default:
			return nil, fmt.Errorf("insert user destination: %w", err)
		}
	}
}

func (r *DestinationRepository) insert(ctx context.Context, candidate domain.Destination) (*domain.Destination, error) {
	// The id follows the millisecond clock but never collides with a stored id.
	const query = `
		INSERT INTO user_destination (id, name, country, best_months, festivals, lat, lng, image_query)
		VALUES (
			GREATEST($1, COALESCE((SELECT MAX(id) FROM user_destination), 0) + 1),
			$2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (name, country) DO NOTHING
		RETURNING id, name, country, best_months, festivals, lat, lng, image_query
	`

	var dest domain.Destination
	err := r.db.GetContext(ctx, &dest, query,
		r.now().UnixMilli(),
		candidate.Name,
		candidate.Country,
		candidate.BestMonths,
		candidate.Festivals,
		candidate.Lat,
		candidate.Lng,
		candidate.ImageQuery,
	)
	if err != nil {
		return nil, err
	}
	return &dest, nil
}
