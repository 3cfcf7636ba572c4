package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ridepoints/internal/domain/errors"
	"github.com/polkiloo/ridepoints/internal/server/http/dto"
	"github.com/polkiloo/ridepoints/internal/server/http/middleware"
)

// AuthHandler processes sign-up and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// SignUp handles POST /signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "referralCode" {
			respondError(c, http.StatusBadRequest, dto.MsgInvalidReferral)
			return
		}
		respondError(c, http.StatusBadRequest, dto.MsgCredentialsRequired)
		return
	}

	token, err := h.facade.SignUp(c.Request.Context(), req.Email, req.Password, req.ReferralCode)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, dto.MsgCredentialsRequired)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			respondError(c, http.StatusBadRequest, dto.MsgUserExists)
		default:
			_ = c.Error(err)
		}
		return
	}

	middleware.SetAuthHeader(c, token)
	c.JSON(http.StatusCreated, dto.TokenResponse{Token: token})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, dto.MsgCredentialsRequired)
		return
	}

	token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, dto.MsgCredentialsRequired)
		case errors.Is(err, domainErrors.ErrNotFound):
			respondError(c, http.StatusBadRequest, dto.MsgUserNotFound)
		case errors.Is(err, domainErrors.ErrInvalidPassword):
			respondError(c, http.StatusBadRequest, dto.MsgInvalidPassword)
		default:
			_ = c.Error(err)
		}
		return
	}

	middleware.SetAuthHeader(c, token)
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
