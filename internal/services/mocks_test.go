package services_test

import (
	"context"
	"time"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepositoryInterface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, email, passwordHash, name string, role models.Role) (*models.User, error) {
	args := m.Called(ctx, email, passwordHash, name, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateName(ctx context.Context, id, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id string, role models.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

// MockInviteRepository is a mock implementation of InviteRepositoryInterface
type MockInviteRepository struct {
	mock.Mock
}

func (m *MockInviteRepository) Create(ctx context.Context, email string, role models.Role, token string, expiresAt time.Time) (*models.Invite, error) {
	args := m.Called(ctx, email, role, token, expiresAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invite), args.Error(1)
}

func (m *MockInviteRepository) GetByToken(ctx context.Context, token string) (*models.Invite, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invite), args.Error(1)
}

func (m *MockInviteRepository) Consume(ctx context.Context, token string) (*models.Invite, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invite), args.Error(1)
}

func (m *MockInviteRepository) List(ctx context.Context) ([]*models.Invite, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Invite), args.Error(1)
}

// MockMentorRepository is a mock implementation of MentorRepositoryInterface
type MockMentorRepository struct {
	mock.Mock
}

func (m *MockMentorRepository) Create(ctx context.Context, userID string, req *models.CreateMentorRequest) (*models.Mentor, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentor), args.Error(1)
}

func (m *MockMentorRepository) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentor), args.Error(1)
}

func (m *MockMentorRepository) GetByUserID(ctx context.Context, userID string) (*models.Mentor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentor), args.Error(1)
}

func (m *MockMentorRepository) GetAll(ctx context.Context) ([]*models.Mentor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Mentor), args.Error(1)
}

func (m *MockMentorRepository) Update(ctx context.Context, id string, req *models.UpdateMentorRequest) (*models.Mentor, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentor), args.Error(1)
}

func (m *MockMentorRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMenteeRepository is a mock implementation of MenteeRepositoryInterface
type MockMenteeRepository struct {
	mock.Mock
}

func (m *MockMenteeRepository) Create(ctx context.Context, userID string, req *models.CreateMenteeRequest) (*models.Mentee, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentee), args.Error(1)
}

func (m *MockMenteeRepository) GetByID(ctx context.Context, id string) (*models.Mentee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentee), args.Error(1)
}

func (m *MockMenteeRepository) GetByUserID(ctx context.Context, userID string) (*models.Mentee, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentee), args.Error(1)
}

func (m *MockMenteeRepository) GetAll(ctx context.Context) ([]*models.Mentee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Mentee), args.Error(1)
}

func (m *MockMenteeRepository) Update(ctx context.Context, id string, req *models.UpdateMenteeRequest) (*models.Mentee, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentee), args.Error(1)
}

func (m *MockMenteeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGroupRepository is a mock implementation of GroupRepositoryInterface
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, mentorID string, req *models.CreateGroupRequest) (*models.Group, error) {
	args := m.Called(ctx, mentorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, id string) (*models.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupRepository) GetAll(ctx context.Context) ([]*models.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Group), args.Error(1)
}

func (m *MockGroupRepository) Update(ctx context.Context, id string, req *models.UpdateGroupRequest) (*models.Group, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRelationshipRepository is a mock implementation of RelationshipRepositoryInterface
type MockRelationshipRepository struct {
	mock.Mock
}

func (m *MockRelationshipRepository) AssignMentee(ctx context.Context, mentorID, menteeID string) error {
	args := m.Called(ctx, mentorID, menteeID)
	return args.Error(0)
}

func (m *MockRelationshipRepository) UnassignMentee(ctx context.Context, mentorID, menteeID string) error {
	args := m.Called(ctx, mentorID, menteeID)
	return args.Error(0)
}

func (m *MockRelationshipRepository) JoinGroup(ctx context.Context, groupID, menteeID string) error {
	args := m.Called(ctx, groupID, menteeID)
	return args.Error(0)
}

func (m *MockRelationshipRepository) LeaveGroup(ctx context.Context, groupID, menteeID string) error {
	args := m.Called(ctx, groupID, menteeID)
	return args.Error(0)
}

// MockSlotRepository is a mock implementation of SlotRepositoryInterface
type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) Create(ctx context.Context, mentorID string, req *models.CreateSlotRequest) (*models.Slot, error) {
	args := m.Called(ctx, mentorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Slot), args.Error(1)
}

func (m *MockSlotRepository) GetByID(ctx context.Context, id string) (*models.Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Slot), args.Error(1)
}

func (m *MockSlotRepository) List(ctx context.Context, filter *models.SlotFilter) ([]*models.Slot, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Slot), args.Error(1)
}

func (m *MockSlotRepository) Book(ctx context.Context, slotID, menteeID string) (*models.Slot, error) {
	args := m.Called(ctx, slotID, menteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Slot), args.Error(1)
}

func (m *MockSlotRepository) Delete(ctx context.Context, slotID, mentorID string) error {
	args := m.Called(ctx, slotID, mentorID)
	return args.Error(0)
}

// MockSessionLogRepository is a mock implementation of SessionLogRepositoryInterface
type MockSessionLogRepository struct {
	mock.Mock
}

func (m *MockSessionLogRepository) Upsert(ctx context.Context, mentorID string, req *models.UpsertSessionLogRequest) (*models.SessionLog, error) {
	args := m.Called(ctx, mentorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionLog), args.Error(1)
}

func (m *MockSessionLogRepository) GetByID(ctx context.Context, id string) (*models.SessionLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionLog), args.Error(1)
}

func (m *MockSessionLogRepository) List(ctx context.Context, filter *models.SessionLogFilter) ([]*models.SessionLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SessionLog), args.Error(1)
}

func (m *MockSessionLogRepository) All(ctx context.Context) ([]*models.SessionLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SessionLog), args.Error(1)
}
