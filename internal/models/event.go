package models

// GameSavedEvent is published to Kafka after a game record is persisted.
type GameSavedEvent struct {
	EventID    string `json:"event_id"`
	UserID     int64  `json:"user_id"`
	GameID     int64  `json:"game_id"`
	MovesCount int    `json:"moves_count"`
	Timestamp  int64  `json:"timestamp"`
}
