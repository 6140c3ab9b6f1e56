package services

import (
	"context"

	"github.com/sbilibin2017/chess-openings/internal/logger"
	"github.com/sbilibin2017/chess-openings/internal/models"
)

// OpeningReader retrieves the openings catalog from its source of truth.
type OpeningReader interface {
	List(ctx context.Context) ([]models.OpeningDB, error)
}

// OpeningCache caches the openings catalog.
type OpeningCache interface {
	Get(ctx context.Context) ([]models.OpeningDB, error)
	Set(ctx context.Context, openings []models.OpeningDB) error
}

// OpeningsService serves the openings catalog, cache first.
type OpeningsService struct {
	repo  OpeningReader
	cache OpeningCache
}

// NewOpeningsService creates a new OpeningsService.
func NewOpeningsService(repo OpeningReader, cache OpeningCache) *OpeningsService {
	return &OpeningsService{repo: repo, cache: cache}
}

// List returns the openings catalog, serving from cache when possible and
// repopulating the cache on a miss. A cache write failure is logged only.
func (s *OpeningsService) List(ctx context.Context) ([]models.OpeningDB, error) {
	openings, err := s.cache.Get(ctx)
	if err == nil {
		return openings, nil
	}

	openings, err = s.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list openings", "error", err)
		return nil, err
	}

	if err := s.cache.Set(ctx, openings); err != nil {
		logger.Log.Errorw("failed to cache openings", "error", err)
	}

	return openings, nil
}
