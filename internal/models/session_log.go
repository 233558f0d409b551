package models

import "time"

// SessionLog is a CRM-style record of one mentoring session. Records are
// upserted on (MentorID, MenteeID, SessionDate): a second submission for the
// same key updates the existing row.
type SessionLog struct {
	ID                  string    `json:"id"`
	MentorID            string    `json:"mentorId"`
	MenteeID            string    `json:"menteeId"`
	SessionDate         string    `json:"sessionDate"` // YYYY-MM-DD
	Topic               string    `json:"topic"`
	MentorScore         *int      `json:"mentorScore,omitempty"`
	MenteeScore         *int      `json:"menteeScore,omitempty"`
	MentorNeedsSupport  bool      `json:"mentorNeedsSupport"`
	MentorSupportReason *string   `json:"mentorSupportReason,omitempty"`
	MenteeNeedsSupport  bool      `json:"menteeNeedsSupport"`
	MenteeSupportReason *string   `json:"menteeSupportReason,omitempty"`
	CompletedByMentor   bool      `json:"completedByMentor"`
	CompletedByMentee   bool      `json:"completedByMentee"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// UpsertSessionLogRequest is the payload for POST /api/session-logs
type UpsertSessionLogRequest struct {
	MentorID            string  `json:"mentorId" binding:"omitempty,uuid"`
	MenteeID            string  `json:"menteeId" binding:"required,uuid"`
	SessionDate         string  `json:"sessionDate" binding:"required,datetime=2006-01-02"`
	Topic               string  `json:"topic" binding:"required,min=1,max=200"`
	MentorScore         *int    `json:"mentorScore" binding:"omitempty,min=1,max=5"`
	MenteeScore         *int    `json:"menteeScore" binding:"omitempty,min=1,max=5"`
	MentorNeedsSupport  bool    `json:"mentorNeedsSupport"`
	MentorSupportReason *string `json:"mentorSupportReason" binding:"omitempty,max=1000"`
	MenteeNeedsSupport  bool    `json:"menteeNeedsSupport"`
	MenteeSupportReason *string `json:"menteeSupportReason" binding:"omitempty,max=1000"`
	CompletedByMentor   bool    `json:"completedByMentor"`
	CompletedByMentee   bool    `json:"completedByMentee"`
}

// SessionLogFilter narrows session log listings
type SessionLogFilter struct {
	MentorID     string
	MenteeID     string
	NeedsSupport bool
}
