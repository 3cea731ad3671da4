package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// RequestLogger tags every request with a unique id,
// returns it in the X-Request-Id header and logs the outcome
func RequestLogger(logger *zerolog.Logger, clock clockwork.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Header("X-Request-Id", requestID)
		started := clock.Now()
		c.Next()
		logger.Info().
			Str("request", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", clock.Since(started)).
			Msg("Handled api request")
	}
}
