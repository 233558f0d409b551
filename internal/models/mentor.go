package models

import "time"

// MentorshipType describes how a mentor works with mentees
type MentorshipType string

const (
	MentorshipGroup    MentorshipType = "GROUP"
	MentorshipOneOnOne MentorshipType = "ONE_ON_ONE"
)

// MentorshipDuration is the expected length of an engagement
type MentorshipDuration string

const (
	DurationShortTerm  MentorshipDuration = "SHORT_TERM"
	DurationMediumTerm MentorshipDuration = "MEDIUM_TERM"
	DurationLongTerm   MentorshipDuration = "LONG_TERM"
)

// Mentor owns a User record 1:1. Mentees and Groups are derived from the
// authoritative references on the mentee/group rows, never stored here.
type Mentor struct {
	ID             string             `json:"id"`
	UserID         string             `json:"userId"`
	Name           string             `json:"name"`
	Email          string             `json:"email,omitempty"`
	Expertise      []string           `json:"expertise"`
	MaxMentees     int                `json:"maxMentees"`
	MentorshipType MentorshipType     `json:"mentorshipType"`
	Duration       MentorshipDuration `json:"duration"`
	Mentees        []string           `json:"mentees"`
	Groups         []string           `json:"groups"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// CreateMentorRequest is the payload for POST /api/mentors
type CreateMentorRequest struct {
	UserID         string             `json:"userId" binding:"omitempty,uuid"`
	Expertise      []string           `json:"expertise" binding:"required,min=1,dive,min=1,max=50"`
	MaxMentees     int                `json:"maxMentees" binding:"required,min=1"`
	MentorshipType MentorshipType     `json:"mentorshipType" binding:"required,oneof=GROUP ONE_ON_ONE"`
	Duration       MentorshipDuration `json:"duration" binding:"required,oneof=SHORT_TERM MEDIUM_TERM LONG_TERM"`
}

// UpdateMentorRequest is the payload for PATCH /api/mentors/:id.
// Pointer fields distinguish "absent" from zero values.
type UpdateMentorRequest struct {
	Expertise      *[]string           `json:"expertise" binding:"omitempty,min=1,dive,min=1,max=50"`
	MaxMentees     *int                `json:"maxMentees" binding:"omitempty,min=1"`
	MentorshipType *MentorshipType     `json:"mentorshipType" binding:"omitempty,oneof=GROUP ONE_ON_ONE"`
	Duration       *MentorshipDuration `json:"duration" binding:"omitempty,oneof=SHORT_TERM MEDIUM_TERM LONG_TERM"`
}
