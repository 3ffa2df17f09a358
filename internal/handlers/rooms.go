package handlers

import (
	"net/http"
	"time"

	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/services"

	"github.com/gin-gonic/gin"
)

type RoomsHandler struct {
	rooms *services.RoomService
}

func NewRoomsHandler(rooms *services.RoomService) *RoomsHandler {
	return &RoomsHandler{rooms: rooms}
}

type RoomActionRequest struct {
	Action      string  `json:"action" example:"create"`
	TelegramID  int64   `json:"telegram_id" example:"123456789"`
	RoomID      string  `json:"room_id" example:"dGVzdHJvb20"`
	RoomName    string  `json:"room_name" example:"Вечерний квиз"`
	IsPrivate   bool    `json:"is_private"`
	PaymentType *string `json:"payment_type" example:"ad"`
}

type RoomCreatedResponse struct {
	RoomID            string    `json:"room_id"`
	CreatorTelegramID int64     `json:"creator_telegram_id"`
	RoomName          string    `json:"room_name"`
	IsPrivate         bool      `json:"is_private"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

type JoinRoomResponse struct {
	Success bool   `json:"success"`
	RoomID  string `json:"room_id"`
}

// HandleAction godoc
// @Summary      Create or join a room
// @Description  action=create makes a room with the caller as first player; action=join seats the caller if capacity allows
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        request body RoomActionRequest true "Room action"
// @Success      200 {object} RoomCreatedResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /rooms [post]
func (h *RoomsHandler) HandleAction(c *gin.Context) {
	var req RoomActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	switch req.Action {
	case "create":
		h.create(c, req)
	case "join":
		h.join(c, req)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown action"})
	}
}

func (h *RoomsHandler) create(c *gin.Context, req RoomActionRequest) {
	if req.TelegramID == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "telegram_id required"})
		return
	}

	room, err := h.rooms.CreateRoom(services.CreateRoomInput{
		TelegramID:  req.TelegramID,
		RoomName:    req.RoomName,
		IsPrivate:   req.IsPrivate,
		PaymentType: req.PaymentType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RoomCreatedResponse{
		RoomID:            room.RoomID,
		CreatorTelegramID: room.CreatorTelegramID,
		RoomName:          room.RoomName,
		IsPrivate:         room.IsPrivate,
		Status:            room.Status,
		CreatedAt:         room.CreatedAt,
	})
}

func (h *RoomsHandler) join(c *gin.Context, req RoomActionRequest) {
	if req.TelegramID == 0 || req.RoomID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "telegram_id and room_id required"})
		return
	}

	if err := h.rooms.JoinRoom(req.RoomID, req.TelegramID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, JoinRoomResponse{Success: true, RoomID: req.RoomID})
}

// GetRooms godoc
// @Summary      Room detail or open-rooms listing
// @Description  With room_id returns the room plus its roster; without it lists up to 20 public waiting rooms
// @Tags         rooms
// @Produce      json
// @Param        room_id query string false "Room ID"
// @Success      200 {object} services.RoomDetail
// @Failure      404 {object} ErrorResponse
// @Router       /rooms [get]
func (h *RoomsHandler) GetRooms(c *gin.Context) {
	roomID := c.Query("room_id")
	if roomID != "" {
		detail, err := h.rooms.GetRoom(roomID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
		return
	}

	rooms, err := h.rooms.ListOpenRooms()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}
