package main

import (
	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/config"
	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/database"
	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/handlers"
	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/logging"

	_ "github.com/pr-poehali-dev/quiz-telegram-blockchain/docs"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Quiz Rooms API
// @version         1.0
// @description     Multiplayer trivia mini-app backend: users, rooms, chat and scoring
// @BasePath        /api/v1

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env not found, using environment variables")
	}

	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	r := handlers.NewRouter(db)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logrus.Infof("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
