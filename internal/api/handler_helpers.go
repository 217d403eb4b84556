package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rainman226/asa-bot-f1-service/internal"
	"github.com/rainman226/asa-bot-f1-service/internal/response"
)

// HandleError logs the failure with its request ID and writes the flat
// {"error": msg} body every endpoint uses.
func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	c.JSON(status, response.Error(msg))
}
