package handlers

import (
	"net/http"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/middleware"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration, login, refresh, logout and profile
type AuthHandler struct {
	service services.AuthServiceInterface
}

func NewAuthHandler(service services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, resp)
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout. There is no server-side session
// state; the ack tells the client it may clear its stored tokens.
func (h *AuthHandler) Logout(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Profile handles GET /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	user, err := h.service.Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, user)
}
