package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rainman226/asa-bot-f1-service/internal/response"
	"github.com/rainman226/asa-bot-f1-service/internal/service"
)

func PostSetTimezone(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.SetTimezoneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest,
				"server_id and timezone are required")
			return
		}

		if err := service.ValidateSetTimezoneRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest,
				"server_id and timezone are required")
			return
		}

		if _, err := service.LookupLocation(req.Timezone); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid timezone")
			return
		}

		if err := app.Timezones().SetTimezone(c.Request.Context(), req.ServerID, req.Timezone); err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError,
				"Failed to store timezone preference")
			return
		}

		c.JSON(http.StatusOK, response.Message(
			fmt.Sprintf("Timezone set to %s for server %s", req.Timezone, req.ServerID)))
	}
}
