package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ridepoints/internal/server/http/dto"
)

// Faults answers errors attached with c.Error by a generic 500. Details
// stay in the server log.
func Faults(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, err := range c.Errors {
			logger.Error("request failed",
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("error", err.Error()),
			)
		}
		if c.Writer.Written() {
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.MsgInternal})
	}
}
