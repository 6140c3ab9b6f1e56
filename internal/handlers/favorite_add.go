package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/chess-openings/internal/logger"
	"github.com/sbilibin2017/chess-openings/internal/middlewares"
	"github.com/sbilibin2017/chess-openings/internal/services"
)

// FavoriteAdder defines the interface that the profile service must implement.
type FavoriteAdder interface {
	AddFavorite(ctx context.Context, userID int64, openingID string) ([]string, error)
}

// AddFavoriteRequest represents the JSON body for adding a favorite opening
// swagger:model AddFavoriteRequest
type AddFavoriteRequest struct {
	// Opening identifier
	// required: true
	// default: sicilian
	OpeningID string `json:"opening_id"`
}

// FavoritesResponse represents the updated favorites list
// swagger:model FavoritesResponse
type FavoritesResponse struct {
	// Favorite opening identifiers in display order
	Favorites []string `json:"favorites"`
}

// FavoriteErrorResponse represents an error response for favorites operations
// swagger:model FavoriteErrorResponse
type FavoriteErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewAddFavoriteHandler returns an HTTP handler for adding a favorite opening.
// @Summary Add favorite opening
// @Description Appends the opening id to the caller's favorites. Adding an id that is already present is a no-op.
// @Tags profile
// @Accept json
// @Produce json
// @Param addFavoriteRequest body handlers.AddFavoriteRequest true "Opening to add"
// @Success 200 {object} handlers.FavoritesResponse "Updated favorites"
// @Failure 400 {object} handlers.FavoriteErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.FavoriteErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.FavoriteErrorResponse "User not found"
// @Failure 500 {object} handlers.FavoriteErrorResponse "Internal server error"
// @Router /me/favorites [post]
// @Security BearerAuth
func NewAddFavoriteHandler(svc FavoriteAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FavoriteErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req AddFavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OpeningID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FavoriteErrorResponse{
				Error: "opening_id is required",
			})
			return
		}

		favorites, err := svc.AddFavorite(ctx, userID, req.OpeningID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FavoriteErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("failed to add favorite", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FavoriteErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FavoritesResponse{
			Favorites: favorites,
		})
	}
}
