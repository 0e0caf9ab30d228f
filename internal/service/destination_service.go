package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/njprem/Travel_Diary_BackEnd/internal/domain"
	"github.com/njprem/Travel_Diary_BackEnd/internal/repository/ports"
)

const snapshotObjectName = "user-destinations.json"

type DestinationService struct {
	store    ports.DestinationStore
	snapshot ports.ObjectStorage
	log      zerolog.Logger
	now      func() time.Time
}

// NewDestinationService wires the catalogue. snapshot may be nil when no backup target is configured.
func NewDestinationService(store ports.DestinationStore, snapshot ports.ObjectStorage, logger zerolog.Logger) *DestinationService {
	return &DestinationService{
		store:    store,
		snapshot: snapshot,
		log:      logger.With().Str("component", "destinations").Logger(),
		now:      time.Now,
	}
}

// ListUser returns the stored user destinations, newest first. A store failure
// is logged and reported as an empty list.
func (s *DestinationService) ListUser(ctx context.Context) []domain.Destination {
	stored, err := s.store.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("load user destinations")
		return []domain.Destination{}
	}
	out := make([]domain.Destination, len(stored))
	for i, d := range stored {
		d.IsUserAdded = true
		out[i] = d
	}
	return out
}

// GetAll merges user destinations (newest first) ahead of the built-in catalogue.
func (s *DestinationService) GetAll(ctx context.Context) []domain.Destination {
	user := s.ListUser(ctx)
	builtins := domain.BuiltinDestinations()

	all := make([]domain.Destination, 0, len(user)+len(builtins))
	all = append(all, user...)
	for _, d := range builtins {
		d.IsUserAdded = false
		all = append(all, d)
	}
	return all
}

func (s *DestinationService) Submit(ctx context.Context, input domain.DestinationInput) (*domain.Destination, error) {
	candidate := input.Destination()
	if strings.TrimSpace(candidate.ImageQuery) == "" {
		candidate.ImageQuery = domain.ImageQueryFor(candidate.Name, candidate.Country)
	}

	stored, err := s.store.Append(ctx, candidate)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("destination_id", stored.ID).
		Str("name", stored.Name).
		Str("country", stored.Country).
		Msg("user destination saved")

	s.backup(ctx)
	return stored, nil
}

func (s *DestinationService) backup(ctx context.Context) {
	if s.snapshot == nil {
		return
	}
	stored, err := s.store.List(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("snapshot skipped: list user destinations")
		return
	}
	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		s.log.Warn().Err(err).Msg("snapshot skipped: encode user destinations")
		return
	}

	name := snapshotObjectName
	archive := "snapshots/" + s.now().UTC().Format("20060102T150405.000Z") + "-" + snapshotObjectName
	for _, object := range []string{name, archive} {
		if _, err := s.snapshot.Upload(ctx, object, "application/json", data); err != nil {
			s.log.Warn().Err(err).Str("object", object).Msg("upload destinations snapshot")
			return
		}
	}
}
