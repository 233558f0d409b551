package handlers

import (
	"net/http"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/middleware"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

// MenteeHandler exposes mentee profile management
type MenteeHandler struct {
	service services.MenteeServiceInterface
}

func NewMenteeHandler(service services.MenteeServiceInterface) *MenteeHandler {
	return &MenteeHandler{service: service}
}

// List handles GET /api/mentees
func (h *MenteeHandler) List(c *gin.Context) {
	mentees, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, mentees)
}

// Get handles GET /api/mentees/:id
func (h *MenteeHandler) Get(c *gin.Context) {
	mentee, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, mentee)
}

// Create handles POST /api/mentees
func (h *MenteeHandler) Create(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	var req models.CreateMenteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	mentee, err := h.service.Create(c.Request.Context(), identity, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, mentee)
}

// Update handles PATCH /api/mentees/:id
func (h *MenteeHandler) Update(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	var req models.UpdateMenteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	mentee, err := h.service.Update(c.Request.Context(), identity, c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, mentee)
}

// Delete handles DELETE /api/mentees/:id
func (h *MenteeHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Mentee deleted"})
}
