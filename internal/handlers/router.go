package handlers

import (
	"net/http"

	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/middleware"
	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires the four handler groups onto a gin engine. Everything is
// stateless; composition happens only through the shared database.
func NewRouter(db *gorm.DB) *gin.Engine {
	authHandler := NewAuthHandler(services.NewUserService(db))
	roomsHandler := NewRoomsHandler(services.NewRoomService(db))
	chatHandler := NewChatHandler(services.NewChatService(db))
	gameHandler := NewGameHandler(services.NewGameService(db))

	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:              []string{"*"},
		AllowMethods:              []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:              []string{"Origin", "Content-Type"},
		OptionsResponseStatusCode: http.StatusOK,
	}))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("", authHandler.Authenticate)
			auth.GET("", authHandler.GetUser)
		}

		rooms := api.Group("/rooms")
		{
			rooms.POST("", roomsHandler.HandleAction)
			rooms.GET("", roomsHandler.GetRooms)
		}

		chat := api.Group("/chat")
		{
			chat.POST("", chatHandler.PostMessage)
			chat.GET("", chatHandler.GetMessages)
		}

		game := api.Group("/game")
		{
			game.POST("", gameHandler.HandleAction)
			game.GET("", gameHandler.GetLeaderboard)
		}
	}

	return r
}
