package models

import "time"

// ApplicationStatus tracks a mentee through the intake funnel
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationInvited     ApplicationStatus = "invited_for_interview"
	ApplicationInterviewed ApplicationStatus = "interviewed"
	ApplicationAccepted    ApplicationStatus = "accepted"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// Valid reports whether s is a known application status
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationInvited, ApplicationInterviewed, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Mentee owns a User record 1:1. MentorID and GroupID are the authoritative
// side of the mentor/group relationships.
type Mentee struct {
	ID                string            `json:"id"`
	UserID            string            `json:"userId"`
	Name              string            `json:"name"`
	Email             string            `json:"email,omitempty"`
	School            *string           `json:"school,omitempty"`
	Interests         []string          `json:"interests"`
	Goals             []string          `json:"goals"`
	Progress          int               `json:"progress"`
	MentorID          *string           `json:"mentorId,omitempty"`
	GroupID           *string           `json:"groupId,omitempty"`
	ApplicationStatus ApplicationStatus `json:"applicationStatus"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// CreateMenteeRequest is the payload for POST /api/mentees
type CreateMenteeRequest struct {
	UserID    string   `json:"userId" binding:"omitempty,uuid"`
	School    *string  `json:"school" binding:"omitempty,max=200"`
	Interests []string `json:"interests" binding:"omitempty,max=10,dive,min=1,max=50"`
	Goals     []string `json:"goals" binding:"omitempty,max=5,dive,min=1,max=200"`
}

// UpdateMenteeRequest is the payload for PATCH /api/mentees/:id
type UpdateMenteeRequest struct {
	School            *string            `json:"school" binding:"omitempty,max=200"`
	Interests         *[]string          `json:"interests" binding:"omitempty,max=10,dive,min=1,max=50"`
	Goals             *[]string          `json:"goals" binding:"omitempty,max=5,dive,min=1,max=200"`
	Progress          *int               `json:"progress" binding:"omitempty,min=0,max=100"`
	ApplicationStatus *ApplicationStatus `json:"applicationStatus" binding:"omitempty,oneof=pending invited_for_interview interviewed accepted rejected"`
}
