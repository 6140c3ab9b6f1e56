package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	Username     string    `json:"username" db:"username"`           // Unique username
	Email        *string   `json:"email" db:"email"`                 // User email, optional
	PasswordHash string    `json:"-" db:"password_hash"`             // Hashed password, never serialized
	DisplayName  *string   `json:"display_name" db:"display_name"`   // Display name, optional
	AvatarURL    *string   `json:"avatar_url" db:"avatar_url"`       // Avatar URL, optional
	Bio          *string   `json:"bio" db:"bio"`                     // Short bio, optional
	Favorites    *string   `json:"favorites" db:"favorites"`         // Serialized favorite opening ids (JSON array of strings)
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}
