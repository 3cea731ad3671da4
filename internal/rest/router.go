package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/rest/api"
	"github.com/sergeii/enigma/internal/rest/middleware"
)

func NewRouter(a *api.API, logger *zerolog.Logger, clock clockwork.Clock) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(logger, clock), gin.Recovery())
	router.GET("/status", a.Status)
	router.POST("/api/encode", a.Encode)
	return router
}
