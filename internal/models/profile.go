package models

import "time"

// ProfileView is the composed profile aggregate returned to callers.
// It is built fresh on every read and never persisted.
type ProfileView struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Email         *string    `json:"email"`
	DisplayName   *string    `json:"display_name"`
	AvatarURL     *string    `json:"avatar_url"`
	Bio           *string    `json:"bio"`
	Favorites     []string   `json:"favorites"`
	GamesCount    int64      `json:"games_count"`
	LatestSavedAt *time.Time `json:"latest_saved_at,omitempty"`
}

// ProfilePatch carries a partial profile update. Nil fields are left untouched.
type ProfilePatch struct {
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
	Bio         *string `json:"bio"`
	Email       *string `json:"email"`
}
