package handlers

import (
	"net/http"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

// InviteHandler exposes invite creation and validation
type InviteHandler struct {
	service services.InviteServiceInterface
}

func NewInviteHandler(service services.InviteServiceInterface) *InviteHandler {
	return &InviteHandler{service: service}
}

// Create handles POST /api/invites
func (h *InviteHandler) Create(c *gin.Context) {
	var req models.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, resp)
}

// Validate handles GET /api/invites/validate/:token
func (h *InviteHandler) Validate(c *gin.Context) {
	validation, err := h.service.Validate(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, validation)
}

// List handles GET /api/invites
func (h *InviteHandler) List(c *gin.Context) {
	invites, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, invites)
}
