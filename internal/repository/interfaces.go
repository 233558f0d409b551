package repository

import (
	"context"
	"time"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
)

// UserRepositoryInterface defines the interface for user data access
type UserRepositoryInterface interface {
	Create(ctx context.Context, email, passwordHash, name string, role models.Role) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateName(ctx context.Context, id, name string) error
	UpdateRole(ctx context.Context, id string, role models.Role) error
}

// MentorRepositoryInterface defines the interface for mentor data access
type MentorRepositoryInterface interface {
	Create(ctx context.Context, userID string, req *models.CreateMentorRequest) (*models.Mentor, error)
	GetByID(ctx context.Context, id string) (*models.Mentor, error)
	GetByUserID(ctx context.Context, userID string) (*models.Mentor, error)
	GetAll(ctx context.Context) ([]*models.Mentor, error)
	Update(ctx context.Context, id string, req *models.UpdateMentorRequest) (*models.Mentor, error)
	Delete(ctx context.Context, id string) error
}

// MenteeRepositoryInterface defines the interface for mentee data access
type MenteeRepositoryInterface interface {
	Create(ctx context.Context, userID string, req *models.CreateMenteeRequest) (*models.Mentee, error)
	GetByID(ctx context.Context, id string) (*models.Mentee, error)
	GetByUserID(ctx context.Context, userID string) (*models.Mentee, error)
	GetAll(ctx context.Context) ([]*models.Mentee, error)
	Update(ctx context.Context, id string, req *models.UpdateMenteeRequest) (*models.Mentee, error)
	Delete(ctx context.Context, id string) error
}

// GroupRepositoryInterface defines the interface for group data access
type GroupRepositoryInterface interface {
	Create(ctx context.Context, mentorID string, req *models.CreateGroupRequest) (*models.Group, error)
	GetByID(ctx context.Context, id string) (*models.Group, error)
	GetAll(ctx context.Context) ([]*models.Group, error)
	Update(ctx context.Context, id string, req *models.UpdateGroupRequest) (*models.Group, error)
	Delete(ctx context.Context, id string) error
}

// RelationshipRepositoryInterface defines the atomic link operations between
// mentors, groups and mentees
type RelationshipRepositoryInterface interface {
	AssignMentee(ctx context.Context, mentorID, menteeID string) error
	UnassignMentee(ctx context.Context, mentorID, menteeID string) error
	JoinGroup(ctx context.Context, groupID, menteeID string) error
	LeaveGroup(ctx context.Context, groupID, menteeID string) error
}

// SlotRepositoryInterface defines the interface for slot data access
type SlotRepositoryInterface interface {
	Create(ctx context.Context, mentorID string, req *models.CreateSlotRequest) (*models.Slot, error)
	GetByID(ctx context.Context, id string) (*models.Slot, error)
	List(ctx context.Context, filter *models.SlotFilter) ([]*models.Slot, error)
	Book(ctx context.Context, slotID, menteeID string) (*models.Slot, error)
	Delete(ctx context.Context, slotID, mentorID string) error
}

// SessionLogRepositoryInterface defines the interface for session log data access
type SessionLogRepositoryInterface interface {
	Upsert(ctx context.Context, mentorID string, req *models.UpsertSessionLogRequest) (*models.SessionLog, error)
	GetByID(ctx context.Context, id string) (*models.SessionLog, error)
	List(ctx context.Context, filter *models.SessionLogFilter) ([]*models.SessionLog, error)
	All(ctx context.Context) ([]*models.SessionLog, error)
}

// InviteRepositoryInterface defines the interface for invite data access
type InviteRepositoryInterface interface {
	Create(ctx context.Context, email string, role models.Role, token string, expiresAt time.Time) (*models.Invite, error)
	GetByToken(ctx context.Context, token string) (*models.Invite, error)
	Consume(ctx context.Context, token string) (*models.Invite, error)
	List(ctx context.Context) ([]*models.Invite, error)
}
