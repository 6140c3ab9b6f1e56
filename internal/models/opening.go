package models

// OpeningDB represents a catalog opening in the database
type OpeningDB struct {
	ID    string   `json:"id" db:"id"`       // Opening identifier, e.g. "sicilian"
	Name  string   `json:"name" db:"name"`   // Human-readable name
	Moves MoveList `json:"moves" db:"moves"` // Main line of the opening
}
