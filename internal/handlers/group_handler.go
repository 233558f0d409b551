package handlers

import (
	"net/http"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/middleware"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

// GroupHandler exposes mentorship group management
type GroupHandler struct {
	service services.GroupServiceInterface
}

func NewGroupHandler(service services.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// List handles GET /api/groups
func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, groups)
}

// Get handles GET /api/groups/:id
func (h *GroupHandler) Get(c *gin.Context) {
	group, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, group)
}

// Create handles POST /api/groups
func (h *GroupHandler) Create(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	group, err := h.service.Create(c.Request.Context(), identity, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, group)
}

// Update handles PATCH /api/groups/:id
func (h *GroupHandler) Update(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	var req models.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	group, err := h.service.Update(c.Request.Context(), identity, c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, group)
}

// Delete handles DELETE /api/groups/:id
func (h *GroupHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Group deleted"})
}
