package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/middleware"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

// SessionLogHandler exposes session log recording, listing and export
type SessionLogHandler struct {
	service services.SessionLogServiceInterface
}

func NewSessionLogHandler(service services.SessionLogServiceInterface) *SessionLogHandler {
	return &SessionLogHandler{service: service}
}

// Upsert handles POST /api/session-logs
func (h *SessionLogHandler) Upsert(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	var req models.UpsertSessionLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	log, err := h.service.Upsert(c.Request.Context(), identity, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, log)
}

// List handles GET /api/session-logs?mentorId=...&menteeId=...
func (h *SessionLogHandler) List(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	filter := &models.SessionLogFilter{
		MentorID: c.Query("mentorId"),
		MenteeID: c.Query("menteeId"),
	}

	logs, err := h.service.List(c.Request.Context(), identity, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, logs)
}

// NeedsSupport handles GET /api/session-logs/needs-support
func (h *SessionLogHandler) NeedsSupport(c *gin.Context) {
	logs, err := h.service.NeedsSupport(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, logs)
}

// Export handles GET /api/session-logs/export, streaming CSV
func (h *SessionLogHandler) Export(c *gin.Context) {
	data, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("session-logs-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
