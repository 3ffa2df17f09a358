package services

import (
	"time"

	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/models"

	"gorm.io/gorm"
)

const defaultLeaderboardSize = 10

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

type CompleteInput struct {
	RoomID         string
	TelegramID     int64
	Score          int
	CorrectAnswers int
}

// CompleteSession records a finished game in one transaction: the session
// row is appended, the per-room score is overwritten with the latest result,
// and the user's cumulative stats are incremented.
func (s *GameService) CompleteSession(in CompleteInput) (*models.GameSession, error) {
	session := models.GameSession{
		RoomID:         in.RoomID,
		TelegramID:     in.TelegramID,
		Score:          in.Score,
		CorrectAnswers: in.CorrectAnswers,
		Completed:      true,
		CompletedAt:    time.Now(),
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.RoomPlayer{}).
			Where("room_id = ? AND telegram_id = ?", in.RoomID, in.TelegramID).
			Update("score", in.Score).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("telegram_id = ?", in.TelegramID).
			Updates(map[string]interface{}{
				"total_score":     gorm.Expr("total_score + ?", in.Score),
				"games_played":    gorm.Expr("games_played + 1"),
				"correct_answers": gorm.Expr("correct_answers + ?", in.CorrectAnswers),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	TelegramID     int64  `json:"telegram_id"`
	Username       string `json:"username"`
	FirstName      string `json:"first_name"`
	AvatarEmoji    string `json:"avatar_emoji"`
	TotalScore     int    `json:"total_score"`
	GamesPlayed    int    `json:"games_played"`
	CorrectAnswers int    `json:"correct_answers"`
}

// Leaderboard ranks users by cumulative score, telegram id ascending on ties
// so repeated reads return the same order.
func (s *GameService) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}

	var users []models.User
	if err := s.db.Order("total_score DESC, telegram_id ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = LeaderboardEntry{
			Rank:           i + 1,
			TelegramID:     u.TelegramID,
			Username:       u.Username,
			FirstName:      u.FirstName,
			AvatarEmoji:    u.AvatarEmoji,
			TotalScore:     u.TotalScore,
			GamesPlayed:    u.GamesPlayed,
			CorrectAnswers: u.CorrectAnswers,
		}
	}
	return entries, nil
}
