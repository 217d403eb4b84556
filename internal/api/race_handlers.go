package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rainman226/asa-bot-f1-service/internal/service"
)

func GetNextRace(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		serverID := c.Query("server_id")
		if serverID == "" {
			HandleError(c, app.Logger(), errors.New("missing query parameter"),
				http.StatusBadRequest, "server_id is required")
			return
		}

		races, err := app.Upstream().CurrentSchedule(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadGateway,
				"Failed to fetch race schedule from upstream API")
			return
		}

		loc, err := service.ClientLocation(c.Request.Context(), app.Timezones(), serverID)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError,
				"Failed to load timezone preference")
			return
		}

		next, err := service.NextRace(races, time.Now().UTC(), loc)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNoUpcomingRace):
				HandleError(c, app.Logger(), err, http.StatusNotFound, "No upcoming races found")
			case errors.Is(err, service.ErrBadUpstreamData):
				HandleError(c, app.Logger(), err, http.StatusBadGateway,
					"Failed to fetch race schedule from upstream API")
			default:
				HandleError(c, app.Logger(), err, http.StatusInternalServerError,
					"Failed to resolve next race")
			}
			return
		}

		c.JSON(http.StatusOK, next)
	}
}

func GetLatestResult(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		races, err := app.Upstream().LastRaceResults(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadGateway,
				"Failed to fetch race results from upstream API")
			return
		}

		ranking, err := service.Ranking(races)
		if err != nil {
			if errors.Is(err, service.ErrNoResults) {
				HandleError(c, app.Logger(), err, http.StatusNotFound, "No race results found")
				return
			}
			HandleError(c, app.Logger(), err, http.StatusInternalServerError,
				"Failed to build ranking")
			return
		}

		c.JSON(http.StatusOK, gin.H{"ranking": ranking})
	}
}
