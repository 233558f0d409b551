package models

import "time"

// Slot is a mentor-published time window bookable by exactly one mentee.
// Once BookedBy is set the slot is terminal: there is no unbook transition.
type Slot struct {
	ID              string    `json:"id"`
	MentorID        string    `json:"mentorId"`
	Date            string    `json:"date"` // YYYY-MM-DD
	Time            string    `json:"time"` // HH:MM
	DurationMinutes int       `json:"duration"`
	MeetingLink     *string   `json:"meetingLink,omitempty"`
	BookedBy        *string   `json:"bookedBy,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// IsBooked reports whether the slot has been claimed
func (s *Slot) IsBooked() bool {
	return s.BookedBy != nil
}

// CreateSlotRequest is the payload for POST /api/slots
type CreateSlotRequest struct {
	MentorID        string  `json:"mentorId" binding:"omitempty,uuid"`
	Date            string  `json:"date" binding:"required,datetime=2006-01-02"`
	Time            string  `json:"time" binding:"required,datetime=15:04"`
	DurationMinutes int     `json:"duration" binding:"required,min=15,max=480"`
	MeetingLink     *string `json:"meetingLink" binding:"omitempty,url"`
}

// BookSlotRequest is the payload for PATCH /api/slots/:id/book.
// MenteeID is only honored for admins; mentees book as themselves.
type BookSlotRequest struct {
	MenteeID string `json:"menteeId" binding:"omitempty,uuid"`
}

// SlotFilter narrows slot listings
type SlotFilter struct {
	MentorID string
	OnlyOpen bool
}
