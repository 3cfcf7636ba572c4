package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ridepoints/internal/server/http/dto"
)

// DashboardHandler serves the authenticated account profile.
type DashboardHandler struct {
	facade DashboardFacade
}

func NewDashboardHandler(facade DashboardFacade) *DashboardHandler {
	return &DashboardHandler{facade: facade}
}

// Show handles GET /dashboard.
func (h *DashboardHandler) Show(c *gin.Context) {
	account, err := h.facade.Dashboard(c.Request.Context(), CurrentIdentity(c).AccountID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		Email:  account.Email,
		Points: account.Points,
		Tier:   string(account.Tier),
	})
}
