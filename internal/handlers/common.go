package handlers

import (
	"errors"
	"net/http"

	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// respondError maps the service error taxonomy onto status codes. Anything
// unclassified is logged in full and answered with a sanitized 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrRoomFull):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
