package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// MoveList is an ordered sequence of opaque move tokens, stored as a JSONB array.
type MoveList []string

// Value implements driver.Valuer so a MoveList can be written to a JSONB column.
func (m MoveList) Value() (driver.Value, error) {
	if m == nil {
		m = MoveList{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for reading a MoveList back from a JSONB column.
func (m *MoveList) Scan(src any) error {
	if src == nil {
		*m = MoveList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported type for MoveList")
	}
}

// GameDB represents a saved game record in the database
type GameDB struct {
	ID         int64     `json:"id" db:"id"`                   // Primary key
	UserID     int64     `json:"user_id" db:"user_id"`         // Owning user
	Moves      MoveList  `json:"moves" db:"moves"`             // Ordered move tokens
	MovesCount int       `json:"moves_count" db:"moves_count"` // Derived: always len(Moves) at save time
	Title      *string   `json:"title" db:"title"`             // Optional title
	SavedAt    time.Time `json:"saved_at" db:"saved_at"`       // Save timestamp, defaults to NOW()
}
