package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ridepoints/internal/domain/model"
	"github.com/polkiloo/ridepoints/internal/server/http/dto"
	"github.com/polkiloo/ridepoints/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated identity from context.
func CurrentIdentity(c *gin.Context) model.Identity {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return model.Identity{}
	}
	identity, _ := val.(model.Identity)
	return identity
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}
