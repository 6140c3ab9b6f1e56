package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/chess-openings/internal/logger"
	"github.com/sbilibin2017/chess-openings/internal/middlewares"
	"github.com/sbilibin2017/chess-openings/internal/services"
)

// FavoriteRemover defines the interface that the profile service must implement.
type FavoriteRemover interface {
	RemoveFavorite(ctx context.Context, userID int64, openingID string) ([]string, error)
}

// NewRemoveFavoriteHandler returns an HTTP handler for removing a favorite opening.
// @Summary Remove favorite opening
// @Description Removes the opening id from the caller's favorites. Removing an absent id is a no-op.
// @Tags profile
// @Produce json
// @Param openingID path string true "Opening identifier"
// @Success 200 {object} handlers.FavoritesResponse "Updated favorites"
// @Failure 401 {object} handlers.FavoriteErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.FavoriteErrorResponse "User not found"
// @Failure 500 {object} handlers.FavoriteErrorResponse "Internal server error"
// @Router /me/favorites/{openingID} [delete]
// @Security BearerAuth
func NewRemoveFavoriteHandler(svc FavoriteRemover) http.HandlerFunc {
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

		openingID := chi.URLParam(r, "openingID")
		if openingID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FavoriteErrorResponse{
				Error: "opening id is required",
			})
			return
		}

		favorites, err := svc.RemoveFavorite(ctx, userID, openingID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FavoriteErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("failed to remove favorite", "userID", userID, "error", err)
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
