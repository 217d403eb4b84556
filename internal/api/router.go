package api

import "github.com/gin-gonic/gin"

// NewRouter wires the three endpoints. Kept separate from main so tests
// can build the same router around fixture dependencies.
func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(AccessLogMiddleware(app.Logger()))

	r.GET("/next-race", GetNextRace(app))
	r.GET("/latest-result", GetLatestResult(app))
	r.POST("/set-timezone", PostSetTimezone(app))

	return r
}
