package handlers

import (
	"net/http"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/middleware"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

// MentorHandler exposes the mentor directory and profile management
type MentorHandler struct {
	service services.MentorServiceInterface
}

func NewMentorHandler(service services.MentorServiceInterface) *MentorHandler {
	return &MentorHandler{service: service}
}

// List handles GET /api/mentors
func (h *MentorHandler) List(c *gin.Context) {
	mentors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, mentors)
}

// Get handles GET /api/mentors/:id
func (h *MentorHandler) Get(c *gin.Context) {
	mentor, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, mentor)
}

// Create handles POST /api/mentors
func (h *MentorHandler) Create(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	var req models.CreateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	mentor, err := h.service.Create(c.Request.Context(), identity, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, mentor)
}

// Update handles PATCH /api/mentors/:id
func (h *MentorHandler) Update(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	var req models.UpdateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	mentor, err := h.service.Update(c.Request.Context(), identity, c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, mentor)
}

// Delete handles DELETE /api/mentors/:id
func (h *MentorHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Mentor deleted"})
}
