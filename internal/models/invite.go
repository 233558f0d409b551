package models

import "time"

// Invite is a time-boxed, single-use registration link pre-filling email and
// role. Lifecycle ends at expiry or consumption.
type Invite struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	Token      string     `json:"-"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	ConsumedAt *time.Time `json:"consumedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Consumed reports whether the invite has already been used
func (i *Invite) Consumed() bool {
	return i.ConsumedAt != nil
}

// Expired reports whether the invite is past its TTL
func (i *Invite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// CreateInviteRequest is the payload for POST /api/invites
type CreateInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  Role   `json:"role" binding:"required,oneof=user mentor mentee admin"`
}

// InviteLinkResponse is returned after creating an invite
type InviteLinkResponse struct {
	Link      string    `json:"link"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// InviteValidation is returned by GET /api/invites/validate/:token
type InviteValidation struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
