package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ridepoints/internal/domain/errors"
	"github.com/polkiloo/ridepoints/internal/server/http/dto"
)

// RideHandler records rides and returns updated totals.
type RideHandler struct {
	facade RideFacade
}

func NewRideHandler(facade RideFacade) *RideHandler {
	return &RideHandler{facade: facade}
}

// LogRide handles POST /logRide.
func (h *RideHandler) LogRide(c *gin.Context) {
	var req dto.LogRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, dto.MsgInvalidPoints)
		return
	}

	account, err := h.facade.LogRide(c.Request.Context(), CurrentIdentity(c).AccountID, req.Points)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidPoints) {
			respondError(c, http.StatusBadRequest, dto.MsgInvalidPoints)
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.LogRideResponse{Points: account.Points, Tier: string(account.Tier)})
}
