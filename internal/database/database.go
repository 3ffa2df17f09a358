package database

import (
	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/config"
	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	logrus.Info("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.RoomPlayer{},
		&models.ChatMessage{},
		&models.GameSession{},
	)
	if err != nil {
		logrus.Fatalf("failed to auto-migrate: %v", err)
	}
	logrus.Info("database migrated")
}
