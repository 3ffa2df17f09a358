package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRoomNotFound = errors.New("Room not found")
	ErrRoomFull     = errors.New("Room is full")
)

const openRoomsLimit = 20

type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

type CreateRoomInput struct {
	TelegramID  int64
	RoomName    string
	IsPrivate   bool
	PaymentType *string
}

type RoomSummary struct {
	RoomID            string `json:"room_id"`
	CreatorTelegramID int64  `json:"creator_telegram_id"`
	RoomName          string `json:"room_name"`
	IsPrivate         bool   `json:"is_private"`
	MaxPlayers        int    `json:"max_players"`
	CurrentPlayers    int    `json:"current_players"`
	Status            string `json:"status"`
	CreatorUsername   string `json:"creator_username"`
	CreatorName       string `json:"creator_name"`
}

type RoomPlayerInfo struct {
	TelegramID  int64  `json:"telegram_id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	AvatarEmoji string `json:"avatar_emoji"`
	Score       int    `json:"score"`
}

type RoomDetail struct {
	RoomSummary
	PaymentType *string          `json:"payment_type"`
	Players     []RoomPlayerInfo `json:"players"`
}

// CreateRoom inserts the room and seats the creator as its first player in
// one transaction.
func (s *RoomService) CreateRoom(in CreateRoomInput) (*models.Room, error) {
	if in.RoomName == "" {
		in.RoomName = models.DefaultRoomName
	}
	token, err := s.generateUniqueToken()
	if err != nil {
		return nil, err
	}
	room := models.Room{
		RoomID:            token,
		CreatorTelegramID: in.TelegramID,
		RoomName:          in.RoomName,
		IsPrivate:         in.IsPrivate,
		PaymentType:       in.PaymentType,
		MaxPlayers:        4,
		CurrentPlayers:    1,
		Status:            models.RoomStatusWaiting,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&room).Error; err != nil {
			return err
		}
		player := models.RoomPlayer{
			RoomID:     room.RoomID,
			TelegramID: in.TelegramID,
			JoinedAt:   time.Now(),
		}
		return tx.Create(&player).Error
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// JoinRoom seats a player if the room still has capacity. The player insert
// is idempotent; a rejoin is a no-op and does not touch the counter. The
// conditional increment keeps the capacity check and the counter update
// atomic across concurrent joins, rolling the seat back when the room is
// already full.
func (s *RoomService) JoinRoom(roomID string, telegramID int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, "room_id = ?", roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		player := models.RoomPlayer{
			RoomID:     roomID,
			TelegramID: telegramID,
			JoinedAt:   time.Now(),
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&player)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Already seated.
			return nil
		}

		upd := tx.Model(&models.Room{}).
			Where("room_id = ? AND current_players < max_players", roomID).
			Update("current_players", gorm.Expr("current_players + 1"))
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return ErrRoomFull
		}
		return nil
	})
}

func (s *RoomService) GetRoom(roomID string) (*RoomDetail, error) {
	var row struct {
		RoomSummary
		PaymentType *string
	}
	err := s.db.Model(&models.Room{}).
		Select(`rooms.room_id, rooms.creator_telegram_id, rooms.room_name, rooms.is_private,
			rooms.max_players, rooms.current_players, rooms.status, rooms.payment_type,
			users.username AS creator_username, users.first_name AS creator_name`).
		Joins("JOIN users ON users.telegram_id = rooms.creator_telegram_id").
		Where("rooms.room_id = ?", roomID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.RoomID == "" {
		return nil, ErrRoomNotFound
	}
	detail := RoomDetail{RoomSummary: row.RoomSummary, PaymentType: row.PaymentType}

	players := []RoomPlayerInfo{}
	err = s.db.Model(&models.RoomPlayer{}).
		Select(`room_players.telegram_id, users.username, users.first_name,
			users.avatar_emoji, room_players.score`).
		Joins("JOIN users ON users.telegram_id = room_players.telegram_id").
		Where("room_players.room_id = ?", roomID).
		Order("room_players.score DESC").
		Scan(&players).Error
	if err != nil {
		return nil, err
	}
	detail.Players = players
	return &detail, nil
}

// ListOpenRooms returns the newest public rooms still waiting for players.
func (s *RoomService) ListOpenRooms() ([]RoomSummary, error) {
	rooms := []RoomSummary{}
	err := s.db.Model(&models.Room{}).
		Select(`rooms.room_id, rooms.creator_telegram_id, rooms.room_name, rooms.is_private,
			rooms.max_players, rooms.current_players, rooms.status,
			users.username AS creator_username, users.first_name AS creator_name`).
		Joins("JOIN users ON users.telegram_id = rooms.creator_telegram_id").
		Where("rooms.status = ? AND rooms.is_private = ?", models.RoomStatusWaiting, false).
		Order("rooms.created_at DESC").
		Limit(openRoomsLimit).
		Scan(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// Room ids are 8 random bytes in unpadded base64url, retried until unused.
func (s *RoomService) generateUniqueToken() (string, error) {
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		token := base64.RawURLEncoding.EncodeToString(buf)

		var count int64
		if err := s.db.Model(&models.Room{}).
			Where("room_id = ?", token).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return token, nil
		}
	}
}
