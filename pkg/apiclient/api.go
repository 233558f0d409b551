package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
)

// Login authenticates and stores the returned token pair
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		&models.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if err := c.store.Save(resp.AccessToken, resp.RefreshToken); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Register creates an account and stores the returned token pair
func (c *Client) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	if err := c.store.Save(resp.AccessToken, resp.RefreshToken); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout tells the server and clears stored tokens. The local clear happens
// even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	if clearErr := c.store.Clear(); clearErr != nil {
		return clearErr
	}
	return err
}

// Profile fetches the authenticated user's account
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Mentors lists the mentor directory
func (c *Client) Mentors(ctx context.Context) ([]*models.Mentor, error) {
	var mentors []*models.Mentor
	if err := c.do(ctx, http.MethodGet, "/api/mentors", nil, &mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}

// Mentor fetches one mentor profile
func (c *Client) Mentor(ctx context.Context, id string) (*models.Mentor, error) {
	var mentor models.Mentor
	if err := c.do(ctx, http.MethodGet, "/api/mentors/"+id, nil, &mentor); err != nil {
		return nil, err
	}
	return &mentor, nil
}

// Mentees lists all mentees
func (c *Client) Mentees(ctx context.Context) ([]*models.Mentee, error) {
	var mentees []*models.Mentee
	if err := c.do(ctx, http.MethodGet, "/api/mentees", nil, &mentees); err != nil {
		return nil, err
	}
	return mentees, nil
}

// Groups lists all groups
func (c *Client) Groups(ctx context.Context) ([]*models.Group, error) {
	var groups []*models.Group
	if err := c.do(ctx, http.MethodGet, "/api/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Slots lists slots, optionally scoped to one mentor or to open slots only
func (c *Client) Slots(ctx context.Context, mentorID string, onlyOpen bool) ([]*models.Slot, error) {
	path := "/api/slots?"
	if mentorID != "" {
		path += "mentorId=" + mentorID + "&"
	}
	if onlyOpen {
		path += "open=true"
	}

	var slots []*models.Slot
	if err := c.do(ctx, http.MethodGet, path, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateSlot publishes an availability slot
func (c *Client) CreateSlot(ctx context.Context, req *models.CreateSlotRequest) (*models.Slot, error) {
	var slot models.Slot
	if err := c.do(ctx, http.MethodPost, "/api/slots", req, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

// BookSlot claims an open slot
func (c *Client) BookSlot(ctx context.Context, slotID string, req *models.BookSlotRequest) (*models.Slot, error) {
	var slot models.Slot
	path := fmt.Sprintf("/api/slots/%s/book", slotID)
	if err := c.do(ctx, http.MethodPatch, path, req, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

// UpsertSessionLog records or updates a session log
func (c *Client) UpsertSessionLog(ctx context.Context, req *models.UpsertSessionLogRequest) (*models.SessionLog, error) {
	var log models.SessionLog
	if err := c.do(ctx, http.MethodPost, "/api/session-logs", req, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

// SessionLogs lists session logs visible to the caller
func (c *Client) SessionLogs(ctx context.Context) ([]*models.SessionLog, error) {
	var logs []*models.SessionLog
	if err := c.do(ctx, http.MethodGet, "/api/session-logs", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// CreateInvite issues a registration invite (admin)
func (c *Client) CreateInvite(ctx context.Context, req *models.CreateInviteRequest) (*models.InviteLinkResponse, error) {
	var resp models.InviteLinkResponse
	if err := c.do(ctx, http.MethodPost, "/api/invites", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ValidateInvite checks an invite token before registration
func (c *Client) ValidateInvite(ctx context.Context, token string) (*models.InviteValidation, error) {
	var validation models.InviteValidation
	if err := c.do(ctx, http.MethodGet, "/api/invites/validate/"+token, nil, &validation); err != nil {
		return nil, err
	}
	return &validation, nil
}
