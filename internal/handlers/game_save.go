package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/chess-openings/internal/logger"
	"github.com/sbilibin2017/chess-openings/internal/middlewares"
	"github.com/sbilibin2017/chess-openings/internal/models"
	"github.com/sbilibin2017/chess-openings/internal/services"
)

// GameSaver defines the interface that the game service must implement.
type GameSaver interface {
	Save(ctx context.Context, userID int64, moves []string, title *string) (*models.GameDB, error)
}

// SaveGameRequest represents the JSON body for saving a game
// swagger:model SaveGameRequest
type SaveGameRequest struct {
	// Ordered move tokens
	// default: ["e4","e5","Nf3"]
	Moves []string `json:"moves"`

	// Optional title
	// default: Italian practice
	Title *string `json:"title"`
}

// GameErrorResponse represents an error response for game operations
// swagger:model GameErrorResponse
type GameErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewSaveGameHandler returns an HTTP handler for saving a game.
// @Summary Save a game
// @Description Persists the move list for the authenticated user. The move count is derived from the list, never taken from the request.
// @Tags games
// @Accept json
// @Produce json
// @Param saveGameRequest body handlers.SaveGameRequest true "Game to save"
// @Success 201 {object} models.GameDB "Persisted game record"
// @Failure 400 {object} handlers.GameErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.GameErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.GameErrorResponse "User not found"
// @Failure 500 {object} handlers.GameErrorResponse "Internal server error"
// @Router /games [post]
// @Security BearerAuth
func NewSaveGameHandler(svc GameSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GameErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req SaveGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GameErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		game, err := svc.Save(ctx, userID, req.Moves, req.Title)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GameErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("failed to save game", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GameErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(game)
	}
}
