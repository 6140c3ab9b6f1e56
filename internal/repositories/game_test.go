package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/chess-openings/internal/models"
)

func TestGameWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	gameRepo := NewGameWriteRepository(db, nil)
	ctx := context.Background()

	owner, err := userRepo.Create(ctx, "alice", "secret", nil)
	assert.NoError(t, err)

	title := "Italian practice"
	game, err := gameRepo.Save(ctx, owner.ID, models.MoveList{"e4", "e5", "Nf3"}, 3, &title)
	assert.NoError(t, err)
	assert.NotNil(t, game)
	assert.NotZero(t, game.ID)
	assert.Equal(t, owner.ID, game.UserID)
	assert.Equal(t, models.MoveList{"e4", "e5", "Nf3"}, game.Moves)
	assert.Equal(t, 3, game.MovesCount)
	assert.Equal(t, "Italian practice", *game.Title)
	assert.False(t, game.SavedAt.IsZero())
}

func TestGameWriteRepository_Save_EmptyMoves(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	gameRepo := NewGameWriteRepository(db, nil)
	ctx := context.Background()

	owner, err := userRepo.Create(ctx, "bob", "secret", nil)
	assert.NoError(t, err)

	game, err := gameRepo.Save(ctx, owner.ID, models.MoveList{}, 0, nil)
	assert.NoError(t, err)
	assert.Equal(t, models.MoveList{}, game.Moves)
	assert.Equal(t, 0, game.MovesCount)
	assert.Nil(t, game.Title)
}

func TestGameReadRepository_ListByOwner(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	gameWriteRepo := NewGameWriteRepository(db, nil)
	gameReadRepo := NewGameReadRepository(db, nil)
	ctx := context.Background()

	owner, err := userRepo.Create(ctx, "charlie", "secret", nil)
	assert.NoError(t, err)
	other, err := userRepo.Create(ctx, "dave", "secret", nil)
	assert.NoError(t, err)

	first, err := gameWriteRepo.Save(ctx, owner.ID, models.MoveList{"e4"}, 1, nil)
	assert.NoError(t, err)
	second, err := gameWriteRepo.Save(ctx, owner.ID, models.MoveList{"d4"}, 1, nil)
	assert.NoError(t, err)
	_, err = gameWriteRepo.Save(ctx, other.ID, models.MoveList{"c4"}, 1, nil)
	assert.NoError(t, err)

	// Pin distinct save times so the ordering assertion is deterministic
	_, err = db.Exec("UPDATE games SET saved_at = NOW() - interval '1 minute' WHERE id = $1", first.ID)
	assert.NoError(t, err)

	t.Run("NewestFirstOwnGamesOnly", func(t *testing.T) {
		games, err := gameReadRepo.ListByOwner(ctx, owner.ID)
		assert.NoError(t, err)
		assert.Len(t, games, 2)
		assert.Equal(t, second.ID, games[0].ID)
		assert.Equal(t, first.ID, games[1].ID)
	})

	t.Run("TiesKeepInsertionOrder", func(t *testing.T) {
		_, err := db.Exec("UPDATE games SET saved_at = NOW() WHERE user_id = $1", owner.ID)
		assert.NoError(t, err)

		games, err := gameReadRepo.ListByOwner(ctx, owner.ID)
		assert.NoError(t, err)
		assert.Len(t, games, 2)
		assert.Equal(t, first.ID, games[0].ID)
		assert.Equal(t, second.ID, games[1].ID)
	})

	t.Run("NoGames", func(t *testing.T) {
		empty, err := userRepo.Create(ctx, "erin", "secret", nil)
		assert.NoError(t, err)

		games, err := gameReadRepo.ListByOwner(ctx, empty.ID)
		assert.NoError(t, err)
		assert.Empty(t, games)
	})
}

func TestGameReadRepository_CountByOwner(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	gameWriteRepo := NewGameWriteRepository(db, nil)
	gameReadRepo := NewGameReadRepository(db, nil)
	ctx := context.Background()

	owner, err := userRepo.Create(ctx, "frank", "secret", nil)
	assert.NoError(t, err)

	count, err := gameReadRepo.CountByOwner(ctx, owner.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = gameWriteRepo.Save(ctx, owner.ID, models.MoveList{"e4"}, 1, nil)
	assert.NoError(t, err)
	_, err = gameWriteRepo.Save(ctx, owner.ID, models.MoveList{"d4"}, 1, nil)
	assert.NoError(t, err)

	count, err = gameReadRepo.CountByOwner(ctx, owner.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGameReadRepository_LatestByOwner(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	gameWriteRepo := NewGameWriteRepository(db, nil)
	gameReadRepo := NewGameReadRepository(db, nil)
	ctx := context.Background()

	owner, err := userRepo.Create(ctx, "grace", "secret", nil)
	assert.NoError(t, err)

	t.Run("NoGames", func(t *testing.T) {
		game, err := gameReadRepo.LatestByOwner(ctx, owner.ID)
		assert.NoError(t, err)
		assert.Nil(t, game)
	})

	t.Run("MatchesListHead", func(t *testing.T) {
		first, err := gameWriteRepo.Save(ctx, owner.ID, models.MoveList{"e4"}, 1, nil)
		assert.NoError(t, err)
		second, err := gameWriteRepo.Save(ctx, owner.ID, models.MoveList{"d4"}, 1, nil)
		assert.NoError(t, err)

		// Pin distinct save times so the ordering assertion is deterministic
		_, err = db.Exec("UPDATE games SET saved_at = NOW() - interval '1 minute' WHERE id = $1", first.ID)
		assert.NoError(t, err)

		latest, err := gameReadRepo.LatestByOwner(ctx, owner.ID)
		assert.NoError(t, err)
		assert.NotNil(t, latest)
		assert.Equal(t, second.ID, latest.ID)

		games, err := gameReadRepo.ListByOwner(ctx, owner.ID)
		assert.NoError(t, err)
		assert.Equal(t, games[0].ID, latest.ID)
	})
}
