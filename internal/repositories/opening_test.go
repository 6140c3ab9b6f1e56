package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/chess-openings/internal/models"
)

func TestOpeningReadRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewOpeningReadRepository(db)
	ctx := context.Background()

	t.Run("EmptyCatalog", func(t *testing.T) {
		openings, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Empty(t, openings)
	})

	t.Run("OrderedByName", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO openings (id, name, moves) VALUES
			('sicilian', 'Sicilian Defence', '["e4","c5"]'),
			('italian', 'Italian Game', '["e4","e5","Nf3","Nc6","Bc4"]'),
			('french', 'French Defence', '["e4","e6"]')`)
		assert.NoError(t, err)

		openings, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, openings, 3)
		assert.Equal(t, "french", openings[0].ID)
		assert.Equal(t, "italian", openings[1].ID)
		assert.Equal(t, "sicilian", openings[2].ID)
		assert.Equal(t, models.MoveList{"e4", "e5", "Nf3", "Nc6", "Bc4"}, openings[1].Moves)
	})
}
