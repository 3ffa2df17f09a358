package services

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("User not found")

const referralBonusPoints = 50

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// AvatarFor picks the deterministic emoji for a telegram id.
func AvatarFor(telegramID int64) string {
	idx := telegramID % int64(len(models.AvatarPalette))
	if idx < 0 {
		idx += int64(len(models.AvatarPalette))
	}
	return models.AvatarPalette[idx]
}

// ReferralCodeFor derives the stable 8-char referral code for a telegram id:
// the first 8 hex chars of md5 over its decimal form.
func ReferralCodeFor(telegramID int64) string {
	sum := md5.Sum([]byte(strconv.FormatInt(telegramID, 10)))
	return hex.EncodeToString(sum[:])[:8]
}

type AuthInput struct {
	TelegramID   int64
	Username     string
	FirstName    string
	LastName     string
	ReferralCode string
}

// Authenticate upserts the profile by telegram id. Inserts set the derived
// avatar and referral code; conflicts update only the mutable profile fields,
// never the accumulated stats or bonus columns. A supplied referral code is
// then applied at most once.
func (s *UserService) Authenticate(in AuthInput) (*models.User, error) {
	user := models.User{
		TelegramID:   in.TelegramID,
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		AvatarEmoji:  AvatarFor(in.TelegramID),
		ReferralCode: ReferralCodeFor(in.TelegramID),
		LastActive:   time.Now(),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "telegram_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "first_name", "last_name", "last_active"}),
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}

	if in.ReferralCode != "" {
		if err := s.applyReferral(in.TelegramID, in.ReferralCode); err != nil {
			return nil, err
		}
	}

	var out models.User
	if err := s.db.First(&out, "telegram_id = ?", in.TelegramID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// applyReferral links the user to the owner of code and credits both sides.
// The referred_by IS NULL guard in the update keeps the credit a one-shot
// even under concurrent auth calls.
func (s *UserService) applyReferral(telegramID int64, code string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var referrer models.User
		if err := tx.First(&referrer, "referral_code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if referrer.TelegramID == telegramID {
			return nil
		}

		res := tx.Model(&models.User{}).
			Where("telegram_id = ? AND referred_by IS NULL", telegramID).
			Updates(map[string]interface{}{
				"referred_by":    referrer.TelegramID,
				"referral_bonus": gorm.Expr("referral_bonus + ?", referralBonusPoints),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		return tx.Model(&models.User{}).
			Where("telegram_id = ?", referrer.TelegramID).
			Update("referral_bonus", gorm.Expr("referral_bonus + ?", referralBonusPoints)).Error
	})
}

func (s *UserService) Get(telegramID int64) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "telegram_id = ?", telegramID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
