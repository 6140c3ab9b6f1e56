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

// ProfileUpdater defines the interface that the profile service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID int64, patch models.ProfilePatch) (*models.ProfileView, error)
}

// UpdateProfileRequest represents the JSON body for a partial profile update.
// Absent fields are left untouched.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Display name
	// default: Alice
	DisplayName *string `json:"display_name"`

	// Avatar URL
	// default: https://example.com/alice.png
	AvatarURL *string `json:"avatar_url"`

	// Short bio
	// default: 1.e4 player
	Bio *string `json:"bio"`

	// Email
	// default: alice@example.com
	Email *string `json:"email"`
}

// NewUpdateProfileHandler returns an HTTP handler for partial profile updates.
// @Summary Update own profile
// @Description Overwrites only the fields present in the body and returns the freshly composed profile view
// @Tags profile
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile patch"
// @Success 200 {object} models.ProfileView "Updated profile view"
// @Failure 400 {object} handlers.ProfileErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ProfileErrorResponse "User not found"
// @Failure 500 {object} handlers.ProfileErrorResponse "Internal server error"
// @Router /me [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
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

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		patch := models.ProfilePatch{
			DisplayName: req.DisplayName,
			AvatarURL:   req.AvatarURL,
			Bio:         req.Bio,
			Email:       req.Email,
		}

		view, err := svc.UpdateProfile(ctx, userID, patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("failed to update profile", "userID", userID, "error", err)
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
