package models

import "time"

type Room struct {
	RoomID            string    `gorm:"primaryKey;size:16" json:"room_id"`
	CreatorTelegramID int64     `gorm:"not null;index" json:"creator_telegram_id"`
	RoomName          string    `gorm:"size:100;not null" json:"room_name"`
	IsPrivate         bool      `gorm:"not null;default:false" json:"is_private"`
	PaymentType       *string   `gorm:"size:20" json:"payment_type,omitempty"`
	MaxPlayers        int       `gorm:"not null;default:4" json:"max_players"`
	CurrentPlayers    int       `gorm:"not null;default:0" json:"current_players"`
	Status            string    `gorm:"size:20;not null;default:'waiting'" json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

const (
	RoomStatusWaiting  = "waiting"
	RoomStatusPlaying  = "playing"
	RoomStatusFinished = "finished"
)

const DefaultRoomName = "Игровая комната"

type RoomPlayer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RoomID     string    `gorm:"size:16;not null;uniqueIndex:idx_room_player" json:"room_id"`
	TelegramID int64     `gorm:"not null;uniqueIndex:idx_room_player" json:"telegram_id"`
	Score      int       `gorm:"not null;default:0" json:"score"`
	JoinedAt   time.Time `json:"joined_at"`
}
