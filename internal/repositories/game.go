package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/chess-openings/internal/logger"
	"github.com/sbilibin2017/chess-openings/internal/models"
)

// GameWriteRepository handles game write operations
type GameWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewGameWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *GameWriteRepository {
	return &GameWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new game record. The save timestamp defaults to NOW() and the
// persisted row including the generated id is returned.
func (r *GameWriteRepository) Save(ctx context.Context, userID int64, moves models.MoveList, movesCount int, title *string) (*models.GameDB, error) {
	query := `
		INSERT INTO games (user_id, moves, moves_count, title, saved_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, moves, moves_count, title, saved_at
	`
	args := []any{userID, moves, movesCount, title}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var game models.GameDB
	err := sqlx.GetContext(ctx, executor, &game, query, args...)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &game, nil
}

// GameReadRepository handles game read operations
type GameReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewGameReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *GameReadRepository {
	return &GameReadRepository{db: db, txGetter: txGetter}
}

// executor prefers the per-request transaction so reads issued after an in-tx
// write observe that write before commit.
func (r *GameReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// ListByOwner returns all games for the owner, most recently saved first.
// Ties on saved_at keep insertion order via id.
func (r *GameReadRepository) ListByOwner(ctx context.Context, userID int64) ([]models.GameDB, error) {
	const query = `
		SELECT id, user_id, moves, moves_count, title, saved_at
		FROM games
		WHERE user_id = $1
		ORDER BY saved_at DESC, id ASC
	`

	var games []models.GameDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &games, query, userID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(games),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return games, nil
}

// CountByOwner returns the total number of games for the owner.
func (r *GameReadRepository) CountByOwner(ctx context.Context, userID int64) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM games
		WHERE user_id = $1
	`

	var count int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &count, query, userID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return count, nil
}

// LatestByOwner returns the most recently saved game for the owner, or nil if
// the owner has no games. Consistent with the head element of ListByOwner.
func (r *GameReadRepository) LatestByOwner(ctx context.Context, userID int64) (*models.GameDB, error) {
	const query = `
		SELECT id, user_id, moves, moves_count, title, saved_at
		FROM games
		WHERE user_id = $1
		ORDER BY saved_at DESC, id ASC
		LIMIT 1
	`

	var game models.GameDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &game, query, userID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &game, nil
}
