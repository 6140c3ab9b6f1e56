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

// GameLister defines the interface that the game service must implement.
type GameLister interface {
	List(ctx context.Context, userID int64) ([]models.GameDB, error)
}

// GamesResponse represents the caller's saved games
// swagger:model GamesResponse
type GamesResponse struct {
	// Games, most recently saved first
	Games []models.GameDB `json:"games"`
}

// NewListGamesHandler returns an HTTP handler for listing the caller's games.
// @Summary List own games
// @Description Returns the authenticated user's games ordered by save time, newest first
// @Tags games
// @Produce json
// @Success 200 {object} handlers.GamesResponse "Saved games"
// @Failure 401 {object} handlers.GameErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.GameErrorResponse "User not found"
// @Failure 500 {object} handlers.GameErrorResponse "Internal server error"
// @Router /games [get]
// @Security BearerAuth
func NewListGamesHandler(svc GameLister) http.HandlerFunc {
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

		games, err := svc.List(ctx, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GameErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("failed to list games", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GameErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		if games == nil {
			games = []models.GameDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GamesResponse{
			Games: games,
		})
	}
}
