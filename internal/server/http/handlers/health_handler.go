package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ridepoints/internal/server/http/dto"
)

// HealthHandler reports store reachability.
type HealthHandler struct {
	facade HealthFacade
}

func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.Ping(c.Request.Context()); err != nil {
		respondError(c, http.StatusServiceUnavailable, dto.MsgServiceUnavailable)
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
