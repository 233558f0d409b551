package services_test

import (
	"context"
	"testing"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/services"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRelationshipService_AssignMentee_AdminBypassesOwnership(t *testing.T) {
	relRepo := new(MockRelationshipRepository)
	mentorRepo := new(MockMentorRepository)
	service := services.NewRelationshipService(relRepo, mentorRepo, new(MockGroupRepository))

	identity := &models.Identity{UserID: "user-a", Role: models.RoleAdmin}
	relRepo.On("AssignMentee", mock.Anything, "mentor-1", "mentee-1").Return(nil)

	err := service.AssignMentee(context.Background(), identity, "mentor-1", "mentee-1")

	require.NoError(t, err)
	mentorRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	relRepo.AssertExpectations(t)
}

func TestRelationshipService_AssignMentee_MentorManagesOwnRoster(t *testing.T) {
	relRepo := new(MockRelationshipRepository)
	mentorRepo := new(MockMentorRepository)
	service := services.NewRelationshipService(relRepo, mentorRepo, new(MockGroupRepository))

	identity := &models.Identity{UserID: "user-m", Role: models.RoleMentor}
	mentorRepo.On("GetByID", mock.Anything, "mentor-1").
		Return(&models.Mentor{ID: "mentor-1", UserID: "user-m"}, nil)
	relRepo.On("AssignMentee", mock.Anything, "mentor-1", "mentee-1").Return(nil)

	err := service.AssignMentee(context.Background(), identity, "mentor-1", "mentee-1")

	require.NoError(t, err)
	relRepo.AssertExpectations(t)
}

func TestRelationshipService_AssignMentee_ForeignRosterDenied(t *testing.T) {
	relRepo := new(MockRelationshipRepository)
	mentorRepo := new(MockMentorRepository)
	service := services.NewRelationshipService(relRepo, mentorRepo, new(MockGroupRepository))

	identity := &models.Identity{UserID: "user-m", Role: models.RoleMentor}
	mentorRepo.On("GetByID", mock.Anything, "mentor-2").
		Return(&models.Mentor{ID: "mentor-2", UserID: "user-other"}, nil)

	err := service.AssignMentee(context.Background(), identity, "mentor-2", "mentee-1")

	require.ErrorIs(t, err, apperrors.ErrAccessDenied)
	relRepo.AssertNotCalled(t, "AssignMentee", mock.Anything, mock.Anything, mock.Anything)
}

func TestRelationshipService_AssignMentee_CapacityConflictPropagates(t *testing.T) {
	relRepo := new(MockRelationshipRepository)
	service := services.NewRelationshipService(relRepo, new(MockMentorRepository), new(MockGroupRepository))

	identity := &models.Identity{UserID: "user-a", Role: models.RoleAdmin}
	relRepo.On("AssignMentee", mock.Anything, "mentor-1", "mentee-1").
		Return(apperrors.ConflictError("mentor is at capacity"))

	err := service.AssignMentee(context.Background(), identity, "mentor-1", "mentee-1")

	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "mentor is at capacity")
}

func TestRelationshipService_UnassignMentee(t *testing.T) {
	relRepo := new(MockRelationshipRepository)
	mentorRepo := new(MockMentorRepository)
	service := services.NewRelationshipService(relRepo, mentorRepo, new(MockGroupRepository))

	identity := &models.Identity{UserID: "user-m", Role: models.RoleMentor}
	mentorRepo.On("GetByID", mock.Anything, "mentor-1").
		Return(&models.Mentor{ID: "mentor-1", UserID: "user-m"}, nil)
	relRepo.On("UnassignMentee", mock.Anything, "mentor-1", "mentee-1").Return(nil)

	err := service.UnassignMentee(context.Background(), identity, "mentor-1", "mentee-1")

	require.NoError(t, err)
	relRepo.AssertExpectations(t)
}

func TestRelationshipService_JoinGroup_LeadingMentor(t *testing.T) {
	relRepo := new(MockRelationshipRepository)
	mentorRepo := new(MockMentorRepository)
	groupRepo := new(MockGroupRepository)
	service := services.NewRelationshipService(relRepo, mentorRepo, groupRepo)

	identity := &models.Identity{UserID: "user-m", Role: models.RoleMentor}
	groupRepo.On("GetByID", mock.Anything, "group-1").
		Return(&models.Group{ID: "group-1", MentorID: "mentor-1"}, nil)
	mentorRepo.On("GetByUserID", mock.Anything, "user-m").
		Return(&models.Mentor{ID: "mentor-1", UserID: "user-m"}, nil)
	relRepo.On("JoinGroup", mock.Anything, "group-1", "mentee-1").Return(nil)

	err := service.JoinGroup(context.Background(), identity, "group-1", "mentee-1")

	require.NoError(t, err)
	relRepo.AssertExpectations(t)
}

func TestRelationshipService_JoinGroup_ForeignGroupDenied(t *testing.T) {
	relRepo := new(MockRelationshipRepository)
	mentorRepo := new(MockMentorRepository)
	groupRepo := new(MockGroupRepository)
	service := services.NewRelationshipService(relRepo, mentorRepo, groupRepo)

	identity := &models.Identity{UserID: "user-m", Role: models.RoleMentor}
	groupRepo.On("GetByID", mock.Anything, "group-9").
		Return(&models.Group{ID: "group-9", MentorID: "mentor-9"}, nil)
	mentorRepo.On("GetByUserID", mock.Anything, "user-m").
		Return(&models.Mentor{ID: "mentor-1", UserID: "user-m"}, nil)

	err := service.JoinGroup(context.Background(), identity, "group-9", "mentee-1")

	require.ErrorIs(t, err, apperrors.ErrAccessDenied)
	relRepo.AssertNotCalled(t, "JoinGroup", mock.Anything, mock.Anything, mock.Anything)
}

func TestRelationshipService_JoinGroup_UnknownGroup(t *testing.T) {
	relRepo := new(MockRelationshipRepository)
	groupRepo := new(MockGroupRepository)
	service := services.NewRelationshipService(relRepo, new(MockMentorRepository), groupRepo)

	identity := &models.Identity{UserID: "user-m", Role: models.RoleMentor}
	groupRepo.On("GetByID", mock.Anything, "group-missing").
		Return(nil, apperrors.NotFoundError("group"))

	err := service.JoinGroup(context.Background(), identity, "group-missing", "mentee-1")

	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRelationshipService_LeaveGroup(t *testing.T) {
	relRepo := new(MockRelationshipRepository)
	service := services.NewRelationshipService(relRepo, new(MockMentorRepository), new(MockGroupRepository))

	identity := &models.Identity{UserID: "user-a", Role: models.RoleAdmin}
	relRepo.On("LeaveGroup", mock.Anything, "group-1", "mentee-1").Return(nil)

	err := service.LeaveGroup(context.Background(), identity, "group-1", "mentee-1")

	require.NoError(t, err)
	relRepo.AssertExpectations(t)
}
