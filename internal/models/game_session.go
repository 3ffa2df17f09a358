package models

import "time"

// GameSession is an append-only record of a finished game: one row per
// completion, no update or resume semantics.
type GameSession struct {
	SessionID      uint      `gorm:"primaryKey" json:"session_id"`
	RoomID         string    `gorm:"size:16;not null;index" json:"room_id"`
	TelegramID     int64     `gorm:"not null;index" json:"telegram_id"`
	Score          int       `gorm:"not null;default:0" json:"score"`
	CorrectAnswers int       `gorm:"not null;default:0" json:"correct_answers"`
	Completed      bool      `gorm:"not null;default:false" json:"completed"`
	CompletedAt    time.Time `json:"completed_at"`
}
