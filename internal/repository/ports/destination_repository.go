package ports

import (
	"context"

	"github.com/njprem/Travel_Diary_BackEnd/internal/domain"
)

// DestinationStore owns the persisted user-added subset of the catalogue.
// List returns entries newest first. Append fails with domain.ErrDestinationExists
// when the (name, country) pair is already stored.
type DestinationStore interface {
	List(ctx context.Context) ([]domain.Destination, error)
	Append(ctx context.Context, candidate domain.Destination) (*domain.Destination, error)
}
