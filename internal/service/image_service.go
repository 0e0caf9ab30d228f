package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/njprem/Travel_Diary_BackEnd/internal/domain"
	"github.com/njprem/Travel_Diary_BackEnd/internal/repository/ports"
)

const (
	defaultImageQuery   = "city"
	fallbackImagePrefix = "https://source.unsplash.com/featured/800x600/?"
)

// FallbackImageURL is the deterministic image used whenever the provider cannot answer.
// The query is appended verbatim.
func FallbackImageURL(query string) string {
	if strings.TrimSpace(query) == "" {
		query = defaultImageQuery
	}
	return fallbackImagePrefix + query
}

type ImageService struct {
	search      ports.ImageSearch
	concurrency int
	log         zerolog.Logger
}

// NewImageService returns a resolver over search. A nil search means no
// provider credential is configured and every lookup uses the fallback.
func NewImageService(search ports.ImageSearch, concurrency int, logger zerolog.Logger) *ImageService {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &ImageService{
		search:      search,
		concurrency: concurrency,
		log:         logger.With().Str("component", "images").Logger(),
	}
}

// Resolve never fails: provider errors collapse into FallbackImageURL.
func (s *ImageService) Resolve(ctx context.Context, query string) string {
	if strings.TrimSpace(query) == "" {
		query = defaultImageQuery
	}
	if s.search == nil {
		return FallbackImageURL(query)
	}

	url, err := s.search.RandomPhotoURL(ctx, query)
	if err != nil || url == "" {
		s.log.Warn().Err(err).Str("query", query).Msg("image lookup failed, using fallback")
		return FallbackImageURL(query)
	}
	return url
}

// ResolveAll resolves the image of every destination, keeping input order.
func (s *ImageService) ResolveAll(ctx context.Context, destinations []domain.Destination) []string {
	urls := make([]string, len(destinations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, d := range destinations {
		i, d := i, d
		g.Go(func() error {
			urls[i] = s.Resolve(gctx, d.ImageQuery)
			return nil
		})
	}
	_ = g.Wait()
	return urls
}
