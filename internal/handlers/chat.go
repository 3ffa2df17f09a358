package handlers

import (
	"net/http"
	"strconv"

	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/services"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chat *services.ChatService
}

func NewChatHandler(chat *services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type PostMessageRequest struct {
	RoomID     string `json:"room_id" example:"dGVzdHJvb20"`
	TelegramID int64  `json:"telegram_id" example:"123456789"`
	Message    string `json:"message" example:"go go go"`
}

// PostMessage godoc
// @Summary      Post a chat message to a room
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body PostMessageRequest true "Message"
// @Success      200 {object} services.ChatMessageView
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /chat [post]
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.RoomID == "" || req.TelegramID == 0 || req.Message == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "room_id, telegram_id and message required"})
		return
	}

	msg, err := h.chat.PostMessage(req.RoomID, req.TelegramID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

// GetMessages godoc
// @Summary      Poll room chat history
// @Description  Returns messages with id greater than since_id, oldest first, capped at 100
// @Tags         chat
// @Produce      json
// @Param        room_id query string true "Room ID"
// @Param        since_id query int false "Cursor: only messages after this id"
// @Success      200 {object} map[string][]services.ChatMessageView
// @Failure      400 {object} ErrorResponse
// @Router       /chat [get]
func (h *ChatHandler) GetMessages(c *gin.Context) {
	roomID := c.Query("room_id")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "room_id required"})
		return
	}

	sinceID, err := strconv.ParseUint(c.DefaultQuery("since_id", "0"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid since_id"})
		return
	}

	messages, err := h.chat.ListMessages(roomID, uint(sinceID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
