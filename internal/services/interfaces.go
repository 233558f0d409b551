package services

import (
	"context"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
)

// AuthServiceInterface defines the interface for authentication operations
type AuthServiceInterface interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
}

// MentorServiceInterface defines the interface for mentor operations
type MentorServiceInterface interface {
	Create(ctx context.Context, identity *models.Identity, req *models.CreateMentorRequest) (*models.Mentor, error)
	GetByID(ctx context.Context, id string) (*models.Mentor, error)
	GetAll(ctx context.Context) ([]*models.Mentor, error)
	Update(ctx context.Context, identity *models.Identity, id string, req *models.UpdateMentorRequest) (*models.Mentor, error)
	Delete(ctx context.Context, id string) error
}

// MenteeServiceInterface defines the interface for mentee operations
type MenteeServiceInterface interface {
	Create(ctx context.Context, identity *models.Identity, req *models.CreateMenteeRequest) (*models.Mentee, error)
	GetByID(ctx context.Context, id string) (*models.Mentee, error)
	GetAll(ctx context.Context) ([]*models.Mentee, error)
	Update(ctx context.Context, identity *models.Identity, id string, req *models.UpdateMenteeRequest) (*models.Mentee, error)
	Delete(ctx context.Context, id string) error
}

// GroupServiceInterface defines the interface for group operations
type GroupServiceInterface interface {
	Create(ctx context.Context, identity *models.Identity, req *models.CreateGroupRequest) (*models.Group, error)
	GetByID(ctx context.Context, id string) (*models.Group, error)
	GetAll(ctx context.Context) ([]*models.Group, error)
	Update(ctx context.Context, identity *models.Identity, id string, req *models.UpdateGroupRequest) (*models.Group, error)
	Delete(ctx context.Context, id string) error
}

// RelationshipServiceInterface manages mentor↔mentee and group↔mentee links
type RelationshipServiceInterface interface {
	AssignMentee(ctx context.Context, identity *models.Identity, mentorID, menteeID string) error
	UnassignMentee(ctx context.Context, identity *models.Identity, mentorID, menteeID string) error
	JoinGroup(ctx context.Context, identity *models.Identity, groupID, menteeID string) error
	LeaveGroup(ctx context.Context, identity *models.Identity, groupID, menteeID string) error
}

// SlotServiceInterface defines the interface for availability slot operations
type SlotServiceInterface interface {
	Create(ctx context.Context, identity *models.Identity, req *models.CreateSlotRequest) (*models.Slot, error)
	List(ctx context.Context, filter *models.SlotFilter) ([]*models.Slot, error)
	Book(ctx context.Context, identity *models.Identity, slotID string, req *models.BookSlotRequest) (*models.Slot, error)
	Delete(ctx context.Context, identity *models.Identity, slotID string) error
}

// SessionLogServiceInterface defines the interface for session log operations
type SessionLogServiceInterface interface {
	Upsert(ctx context.Context, identity *models.Identity, req *models.UpsertSessionLogRequest) (*models.SessionLog, error)
	List(ctx context.Context, identity *models.Identity, filter *models.SessionLogFilter) ([]*models.SessionLog, error)
	NeedsSupport(ctx context.Context) ([]*models.SessionLog, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

// InviteServiceInterface defines the interface for invite operations
type InviteServiceInterface interface {
	Create(ctx context.Context, req *models.CreateInviteRequest) (*models.InviteLinkResponse, error)
	Validate(ctx context.Context, token string) (*models.InviteValidation, error)
	List(ctx context.Context) ([]*models.Invite, error)
}
