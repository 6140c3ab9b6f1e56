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

// ProfileGetter defines the interface that the profile service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID int64) (*models.ProfileView, error)
}

// ProfileErrorResponse represents an error response for profile operations
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewGetProfileHandler returns an HTTP handler for fetching the caller's profile.
// @Summary Get own profile
// @Description Returns identity fields, favorite openings and game statistics for the authenticated user
// @Tags profile
// @Produce json
// @Success 200 {object} models.ProfileView "Profile view"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ProfileErrorResponse "User not found"
// @Failure 500 {object} handlers.ProfileErrorResponse "Internal server error"
// @Router /me [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		view, err := svc.GetProfile(ctx, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("failed to get profile", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(view)
	}
}
