package models

import "time"

type ChatMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RoomID     string    `gorm:"size:16;not null;index" json:"room_id"`
	TelegramID int64     `gorm:"not null" json:"telegram_id"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
