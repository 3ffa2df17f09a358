package services

import (
	"errors"
	"time"

	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/models"

	"gorm.io/gorm"
)

const chatHistoryLimit = 100

type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

// ChatMessageView is a message enriched with the sender's display fields.
// RoomID is only set on the post response, matching the wire format.
type ChatMessageView struct {
	ID          uint      `json:"id"`
	RoomID      string    `json:"room_id,omitempty"`
	TelegramID  int64     `json:"telegram_id"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
	FirstName   string    `json:"first_name"`
	Username    string    `json:"username"`
	AvatarEmoji string    `json:"avatar_emoji"`
}

func (s *ChatService) PostMessage(roomID string, telegramID int64, text string) (*ChatMessageView, error) {
	var sender models.User
	if err := s.db.First(&sender, "telegram_id = ?", telegramID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	msg := models.ChatMessage{
		RoomID:     roomID,
		TelegramID: telegramID,
		Message:    text,
		CreatedAt:  time.Now(),
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}

	return &ChatMessageView{
		ID:          msg.ID,
		RoomID:      msg.RoomID,
		TelegramID:  msg.TelegramID,
		Message:     msg.Message,
		CreatedAt:   msg.CreatedAt,
		FirstName:   sender.FirstName,
		Username:    sender.Username,
		AvatarEmoji: sender.AvatarEmoji,
	}, nil
}

// ListMessages returns messages with id greater than sinceID, oldest first,
// capped at 100 rows per poll.
func (s *ChatService) ListMessages(roomID string, sinceID uint) ([]ChatMessageView, error) {
	messages := []ChatMessageView{}
	err := s.db.Model(&models.ChatMessage{}).
		Select(`chat_messages.id, chat_messages.telegram_id, chat_messages.message,
			chat_messages.created_at, users.first_name, users.username, users.avatar_emoji`).
		Joins("JOIN users ON users.telegram_id = chat_messages.telegram_id").
		Where("chat_messages.room_id = ? AND chat_messages.id > ?", roomID, sinceID).
		Order("chat_messages.created_at ASC, chat_messages.id ASC").
		Limit(chatHistoryLimit).
		Scan(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
