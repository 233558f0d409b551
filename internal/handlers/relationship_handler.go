package handlers

import (
	"net/http"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/middleware"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

// RelationshipHandler exposes mentor roster and group membership management
type RelationshipHandler struct {
	service services.RelationshipServiceInterface
}

func NewRelationshipHandler(service services.RelationshipServiceInterface) *RelationshipHandler {
	return &RelationshipHandler{service: service}
}

// AssignMentee handles PATCH /api/mentors/:id/mentees/:menteeId
func (h *RelationshipHandler) AssignMentee(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	if err := h.service.AssignMentee(c.Request.Context(), identity, c.Param("id"), c.Param("menteeId")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Mentee assigned"})
}

// UnassignMentee handles DELETE /api/mentors/:id/mentees/:menteeId
func (h *RelationshipHandler) UnassignMentee(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	if err := h.service.UnassignMentee(c.Request.Context(), identity, c.Param("id"), c.Param("menteeId")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Mentee unassigned"})
}

// JoinGroup handles POST /api/groups/:id/mentees/:menteeId
func (h *RelationshipHandler) JoinGroup(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	if err := h.service.JoinGroup(c.Request.Context(), identity, c.Param("id"), c.Param("menteeId")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Mentee added to group"})
}

// LeaveGroup handles DELETE /api/groups/:id/mentees/:menteeId
func (h *RelationshipHandler) LeaveGroup(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	if err := h.service.LeaveGroup(c.Request.Context(), identity, c.Param("id"), c.Param("menteeId")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Mentee removed from group"})
}
