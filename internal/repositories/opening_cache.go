package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/chess-openings/internal/logger"
	"github.com/sbilibin2017/chess-openings/internal/models"
)

const openingsCacheKey = "openings:catalog"

// ErrOpeningsNotCached is returned when the catalog is not present in the cache.
var ErrOpeningsNotCached = errors.New("openings catalog not found in cache")

// OpeningCacheRepository caches the openings catalog in Redis.
type OpeningCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached catalog
}

// NewOpeningCacheRepository creates a new repository instance with optional TTL
func NewOpeningCacheRepository(client *redis.Client, expiration time.Duration) *OpeningCacheRepository {
	return &OpeningCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached openings catalog.
func (r *OpeningCacheRepository) Get(ctx context.Context) ([]models.OpeningDB, error) {
	val, err := r.client.Get(ctx, openingsCacheKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", openingsCacheKey,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrOpeningsNotCached
		}
		return nil, err
	}

	var openings []models.OpeningDB
	if err := json.Unmarshal([]byte(val), &openings); err != nil {
		logger.Log.Infow(
			"key", openingsCacheKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", openingsCacheKey,
		"result", len(openings),
		"error", nil,
	)

	return openings, nil
}

// Set caches the openings catalog in Redis with expiration
func (r *OpeningCacheRepository) Set(ctx context.Context, openings []models.OpeningDB) error {
	data, err := json.Marshal(openings)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, openingsCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", openingsCacheKey,
		"result", "ok",
		"error", err,
	)

	return err
}
