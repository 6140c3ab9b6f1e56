package services

import (
	"context"

	"github.com/sbilibin2017/chess-openings/internal/favorites"
	"github.com/sbilibin2017/chess-openings/internal/logger"
	"github.com/sbilibin2017/chess-openings/internal/models"
)

// ProfileUserReader defines the user lookups the profile service needs.
type ProfileUserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// ProfileUserWriter defines the user mutations the profile service needs.
type ProfileUserWriter interface {
	UpdateProfile(ctx context.Context, id int64, patch models.ProfilePatch) error
	UpdateFavorites(ctx context.Context, id int64, favorites string) error
}

// GameStatsReader supplies the game statistics composed into a profile view.
type GameStatsReader interface {
	CountByOwner(ctx context.Context, userID int64) (int64, error)
	LatestByOwner(ctx context.Context, userID int64) (*models.GameDB, error)
}

// ProfileService composes identity fields, decoded favorites and game
// statistics into a profile view, and applies partial updates.
type ProfileService struct {
	users  ProfileUserReader
	writer ProfileUserWriter
	stats  GameStatsReader
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(users ProfileUserReader, writer ProfileUserWriter, stats GameStatsReader) *ProfileService {
	return &ProfileService{
		users:  users,
		writer: writer,
		stats:  stats,
	}
}

// GetProfile builds a fresh profile view for the user. Statistics reflect the
// game store as observed at call time; nothing is cached. A malformed
// favorites value decodes to an empty list and never fails the read.
func (svc *ProfileService) GetProfile(ctx context.Context, userID int64) (*models.ProfileView, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "userID", userID)
		return nil, ErrUserNotFound
	}

	count, err := svc.stats.CountByOwner(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count games", "userID", userID, "err", err)
		return nil, err
	}

	latest, err := svc.stats.LatestByOwner(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get latest game", "userID", userID, "err", err)
		return nil, err
	}

	view := &models.ProfileView{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		Bio:         user.Bio,
		Favorites:   favorites.Decode(user.Favorites),
		GamesCount:  count,
	}
	if latest != nil {
		view.LatestSavedAt = &latest.SavedAt
	}

	return view, nil
}

// UpdateProfile overwrites the fields present in the patch, leaves the rest
// untouched, and returns a freshly composed view of the saved record.
func (svc *ProfileService) UpdateProfile(ctx context.Context, userID int64, patch models.ProfilePatch) (*models.ProfileView, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "userID", userID)
		return nil, ErrUserNotFound
	}

	if err := svc.writer.UpdateProfile(ctx, userID, patch); err != nil {
		logger.Log.Errorw("failed to update profile", "userID", userID, "err", err)
		return nil, err
	}

	return svc.GetProfile(ctx, userID)
}

// AddFavorite appends an opening id to the user's favorites unless already
// present. Adding twice yields the same list as adding once.
func (svc *ProfileService) AddFavorite(ctx context.Context, userID int64, openingID string) ([]string, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "userID", userID)
		return nil, ErrUserNotFound
	}

	encoded, list, err := favorites.Add(user.Favorites, openingID)
	if err != nil {
		// Persisted favorites are left unchanged on encode failure.
		logger.Log.Errorw("failed to encode favorites", "userID", userID, "err", err)
		return nil, err
	}

	if err := svc.writer.UpdateFavorites(ctx, userID, encoded); err != nil {
		logger.Log.Errorw("failed to save favorites", "userID", userID, "err", err)
		return nil, err
	}

	return list, nil
}

// RemoveFavorite removes an opening id from the user's favorites if present;
// removing an absent id is a no-op.
func (svc *ProfileService) RemoveFavorite(ctx context.Context, userID int64, openingID string) ([]string, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "userID", userID)
		return nil, ErrUserNotFound
	}

	encoded, list, err := favorites.Remove(user.Favorites, openingID)
	if err != nil {
		logger.Log.Errorw("failed to encode favorites", "userID", userID, "err", err)
		return nil, err
	}

	if err := svc.writer.UpdateFavorites(ctx, userID, encoded); err != nil {
		logger.Log.Errorw("failed to save favorites", "userID", userID, "err", err)
		return nil, err
	}

	return list, nil
}
