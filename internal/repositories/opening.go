package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/chess-openings/internal/logger"
	"github.com/sbilibin2017/chess-openings/internal/models"
)

// OpeningReadRepository reads the openings catalog from the database.
type OpeningReadRepository struct {
	db *sqlx.DB
}

func NewOpeningReadRepository(db *sqlx.DB) *OpeningReadRepository {
	return &OpeningReadRepository{db: db}
}

// List returns the full openings catalog ordered by name.
func (r *OpeningReadRepository) List(ctx context.Context) ([]models.OpeningDB, error) {
	const query = `
		SELECT id, name, moves
		FROM openings
		ORDER BY name
	`

	var openings []models.OpeningDB
	err := r.db.SelectContext(ctx, &openings, query)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(openings),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return openings, nil
}
