package handlers

import (
	"net/http"
	"strconv"

	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	game *services.GameService
}

func NewGameHandler(game *services.GameService) *GameHandler {
	return &GameHandler{game: game}
}

type GameActionRequest struct {
	Action         string `json:"action" example:"complete"`
	TelegramID     int64  `json:"telegram_id" example:"123456789"`
	RoomID         string `json:"room_id" example:"dGVzdHJvb20"`
	Score          int    `json:"score" example:"120"`
	CorrectAnswers int    `json:"correct_answers" example:"8"`
}

type GameCompletedResponse struct {
	Success        bool `json:"success"`
	SessionID      uint `json:"session_id"`
	Score          int  `json:"score"`
	CorrectAnswers int  `json:"correct_answers"`
}

// HandleAction godoc
// @Summary      Record a completed game
// @Description  action=complete appends a session, overwrites the per-room score and increments cumulative stats
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        request body GameActionRequest true "Game action"
// @Success      200 {object} GameCompletedResponse
// @Failure      400 {object} ErrorResponse
// @Router       /game [post]
func (h *GameHandler) HandleAction(c *gin.Context) {
	var req GameActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if req.Action != "complete" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown action"})
		return
	}
	if req.TelegramID == 0 || req.RoomID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "telegram_id and room_id required"})
		return
	}

	session, err := h.game.CompleteSession(services.CompleteInput{
		RoomID:         req.RoomID,
		TelegramID:     req.TelegramID,
		Score:          req.Score,
		CorrectAnswers: req.CorrectAnswers,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, GameCompletedResponse{
		Success:        true,
		SessionID:      session.SessionID,
		Score:          session.Score,
		CorrectAnswers: session.CorrectAnswers,
	})
}

// GetLeaderboard godoc
// @Summary      Global leaderboard
// @Description  Top users by cumulative score; rank is 1-based, ties break on telegram_id ascending
// @Tags         game
// @Produce      json
// @Param        action query string false "Only 'leaderboard' is supported" default(leaderboard)
// @Param        limit query int false "Number of entries" default(10)
// @Success      200 {object} map[string][]services.LeaderboardEntry
// @Failure      400 {object} ErrorResponse
// @Router       /game [get]
func (h *GameHandler) GetLeaderboard(c *gin.Context) {
	if action := c.DefaultQuery("action", "leaderboard"); action != "leaderboard" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown action"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		return
	}

	entries, err := h.game.Leaderboard(limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
