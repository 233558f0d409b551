package models

import "time"

// MeetingFrequency is how often a group meets
type MeetingFrequency string

const (
	FrequencyWeekly   MeetingFrequency = "Weekly"
	FrequencyBiWeekly MeetingFrequency = "Bi-weekly"
	FrequencyMonthly  MeetingFrequency = "Monthly"
)

// MeetingSchedule describes a group's cadence. Time is "HH:MM".
type MeetingSchedule struct {
	Frequency MeetingFrequency `json:"frequency" binding:"required,oneof=Weekly Bi-weekly Monthly"`
	DayOfWeek *string          `json:"dayOfWeek,omitempty" binding:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Time      string           `json:"time" binding:"required,len=5"`
}

// Group is a many-mentee cohort led by one mentor. Mentees is derived from
// the group reference on mentee rows.
type Group struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Topic           string           `json:"topic"`
	MentorID        string           `json:"mentorId"`
	MaxCapacity     int              `json:"maxCapacity"`
	MeetingSchedule *MeetingSchedule `json:"meetingSchedule,omitempty"`
	Mentees         []string         `json:"mentees"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// CreateGroupRequest is the payload for POST /api/groups
type CreateGroupRequest struct {
	Name            string           `json:"name" binding:"required,min=1,max=100"`
	Description     string           `json:"description" binding:"omitempty,max=1000"`
	Topic           string           `json:"topic" binding:"required,min=1,max=100"`
	MentorID        string           `json:"mentorId" binding:"omitempty,uuid"`
	MaxCapacity     int              `json:"maxCapacity" binding:"required,min=1"`
	MeetingSchedule *MeetingSchedule `json:"meetingSchedule" binding:"omitempty"`
}

// UpdateGroupRequest is the payload for PATCH /api/groups/:id
type UpdateGroupRequest struct {
	Name            *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Description     *string          `json:"description" binding:"omitempty,max=1000"`
	Topic           *string          `json:"topic" binding:"omitempty,min=1,max=100"`
	MaxCapacity     *int             `json:"maxCapacity" binding:"omitempty,min=1"`
	MeetingSchedule *MeetingSchedule `json:"meetingSchedule" binding:"omitempty"`
}
