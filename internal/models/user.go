package models

import "time"

// AvatarPalette is the fixed emoji set a user's avatar is picked from.
// The choice is deterministic: AvatarPalette[telegram_id % 8].
var AvatarPalette = []string{"🎮", "🎯", "🚀", "⚡", "🔥", "💎", "🌟", "🎨"}

type User struct {
	TelegramID     int64     `gorm:"primaryKey;autoIncrement:false" json:"telegram_id"`
	Username       string    `gorm:"size:100" json:"username"`
	FirstName      string    `gorm:"size:100" json:"first_name"`
	LastName       string    `gorm:"size:100" json:"last_name"`
	AvatarEmoji    string    `gorm:"size:16" json:"avatar_emoji"`
	ReferralCode   string    `gorm:"size:8;uniqueIndex" json:"referral_code"`
	ReferredBy     *int64    `json:"-"`
	ReferralBonus  int       `gorm:"not null;default:0" json:"referral_bonus"`
	TotalScore     int       `gorm:"not null;default:0" json:"total_score"`
	GamesPlayed    int       `gorm:"not null;default:0" json:"games_played"`
	CorrectAnswers int       `gorm:"not null;default:0" json:"correct_answers"`
	LastActive     time.Time `json:"-"`
}
