package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/chess-openings/internal/logger"
	"github.com/sbilibin2017/chess-openings/internal/models"
	"github.com/segmentio/kafka-go"
)

// GameOwnerReader resolves the owning user of a game.
type GameOwnerReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// GameWriter defines write operations for game records.
type GameWriter interface {
	Save(ctx context.Context, userID int64, moves models.MoveList, movesCount int, title *string) (*models.GameDB, error)
}

// GameReader defines read operations for game records.
type GameReader interface {
	ListByOwner(ctx context.Context, userID int64) ([]models.GameDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// GameService handles game saves and listing, and publishes save events.
type GameService struct {
	owners      GameOwnerReader
	writeRepo   GameWriter
	readRepo    GameReader
	kafkaWriter KafkaWriter
}

// NewGameService creates a new GameService.
func NewGameService(owners GameOwnerReader, writeRepo GameWriter, readRepo GameReader, kafkaWriter KafkaWriter) *GameService {
	return &GameService{
		owners:      owners,
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishGameSaved publishes a saved-game event to Kafka. Best effort: a
// publish failure is logged and never fails the save.
func (s *GameService) publishGameSaved(ctx context.Context, event models.GameSavedEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Game saved event published to Kafka", "event_id", event.EventID, "game_id", event.GameID)
	}
}

// Save persists a game for the owner. The move count is always derived from
// the move list here; callers cannot supply it. A nil move list is treated as
// empty.
func (s *GameService) Save(ctx context.Context, userID int64, moves []string, title *string) (*models.GameDB, error) {
	owner, err := s.owners.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve owner", "userID", userID, "error", err)
		return nil, err
	}
	if owner == nil {
		logger.Log.Errorw("owner does not exist", "userID", userID)
		return nil, ErrUserNotFound
	}

	if moves == nil {
		moves = []string{}
	}
	movesCount := len(moves)

	game, err := s.writeRepo.Save(ctx, userID, models.MoveList(moves), movesCount, title)
	if err != nil {
		logger.Log.Errorw("failed to save game", "userID", userID, "error", err)
		return nil, err
	}

	event := models.GameSavedEvent{
		EventID:    uuid.NewString(),
		UserID:     userID,
		GameID:     game.ID,
		MovesCount: game.MovesCount,
		Timestamp:  time.Now().Unix(),
	}
	s.publishGameSaved(ctx, event)

	return game, nil
}

// List returns the owner's games, most recently saved first.
func (s *GameService) List(ctx context.Context, userID int64) ([]models.GameDB, error) {
	owner, err := s.owners.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve owner", "userID", userID, "error", err)
		return nil, err
	}
	if owner == nil {
		logger.Log.Errorw("owner does not exist", "userID", userID)
		return nil, ErrUserNotFound
	}

	games, err := s.readRepo.ListByOwner(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list games", "userID", userID, "error", err)
		return nil, err
	}

	return games, nil
}
