package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/middleware"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

// SlotHandler exposes availability slot publishing and booking
type SlotHandler struct {
	service services.SlotServiceInterface
}

func NewSlotHandler(service services.SlotServiceInterface) *SlotHandler {
	return &SlotHandler{service: service}
}

// List handles GET /api/slots?mentorId=...&open=true
func (h *SlotHandler) List(c *gin.Context) {
	filter := &models.SlotFilter{
		MentorID: c.Query("mentorId"),
		OnlyOpen: c.Query("open") == "true",
	}

	slots, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, slots)
}

// Create handles POST /api/slots
func (h *SlotHandler) Create(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	var req models.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	slot, err := h.service.Create(c.Request.Context(), identity, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, slot)
}

// Book handles PATCH /api/slots/:id/book. An empty body books the slot for
// the authenticated mentee.
func (h *SlotHandler) Book(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	var req models.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, err)
		return
	}

	slot, err := h.service.Book(c.Request.Context(), identity, c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, slot)
}

// Delete handles DELETE /api/slots/:id
func (h *SlotHandler) Delete(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Slot deleted"})
}
