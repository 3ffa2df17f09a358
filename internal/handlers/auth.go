package handlers

import (
	"net/http"
	"strconv"

	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

type TelegramAuthRequest struct {
	TelegramID   int64  `json:"telegram_id" example:"123456789"`
	Username     string `json:"username" example:"player1"`
	FirstName    string `json:"first_name" example:"Ivan"`
	LastName     string `json:"last_name" example:"Petrov"`
	ReferralCode string `json:"referral_code" example:"a1b2c3d4"`
}

// Authenticate godoc
// @Summary      Upsert user profile by telegram id
// @Description  Creates or refreshes the profile and applies an optional referral code once
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body TelegramAuthRequest true "Telegram profile"
// @Success      200 {object} models.User
// @Failure      400 {object} ErrorResponse
// @Router       /auth [post]
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req TelegramAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.TelegramID == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "telegram_id required"})
		return
	}

	user, err := h.users.Authenticate(services.AuthInput{
		TelegramID:   req.TelegramID,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser godoc
// @Summary      Look up a user profile
// @Tags         auth
// @Produce      json
// @Param        telegram_id query int true "Telegram ID"
// @Success      200 {object} models.User
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /auth [get]
func (h *AuthHandler) GetUser(c *gin.Context) {
	tgID, err := strconv.ParseInt(c.Query("telegram_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "telegram_id required"})
		return
	}

	user, err := h.users.Get(tgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
