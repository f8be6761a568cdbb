package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/response"
)

func SendSuccess(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, response.Envelope{
		Success: true,
		Message: message,
	})
}

func SendData(c *gin.Context, statusCode int, data any, message ...string) {
	envelope := response.Envelope{
		Success: true,
		Data:    data,
	}

	if len(message) > 0 && message[0] != "" {
		envelope.Message = message[0]
	}

	c.JSON(statusCode, envelope)
}

func SendError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, response.Envelope{
		Success: false,
		Error:   message,
	})
}

// HandleError is the terminal error translator. AppErrors carry their own
// status and message; anything else renders as a generic 500.
func HandleError(c *gin.Context, err error) {
	var appErr *domain.AppError

	if errors.As(err, &appErr) {
		SendError(c, appErr.Status, appErr.Message)
		return
	}

	SendError(c, http.StatusInternalServerError, "Internal server error")
}
