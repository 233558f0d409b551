package services

import (
	"context"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/repository"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/logger"
	"go.uber.org/zap"
)

// GroupService handles mentorship group management
type GroupService struct {
	groupRepo  repository.GroupRepositoryInterface
	mentorRepo repository.MentorRepositoryInterface
}

// NewGroupService creates a new group service instance
func NewGroupService(
	groupRepo repository.GroupRepositoryInterface,
	mentorRepo repository.MentorRepositoryInterface,
) *GroupService {
	return &GroupService{groupRepo: groupRepo, mentorRepo: mentorRepo}
}

// Create adds a group. A mentor leads their own groups; admins may set any
// mentor via req.MentorID.
func (s *GroupService) Create(ctx context.Context, identity *models.Identity, req *models.CreateGroupRequest) (*models.Group, error) {
	mentorID := req.MentorID
	if identity.Role != models.RoleAdmin {
		mentor, err := s.mentorRepo.GetByUserID(ctx, identity.UserID)
		if err != nil {
			return nil, err
		}
		if mentorID != "" && mentorID != mentor.ID {
			return nil, apperrors.AccessDeniedError("mentors may only create their own groups")
		}
		mentorID = mentor.ID
	}
	if mentorID == "" {
		return nil, apperrors.InvalidInputError("mentorId", "required")
	}

	group, err := s.groupRepo.Create(ctx, mentorID, req)
	if err != nil {
		return nil, err
	}

	logger.Info("Group created",
		zap.String("group_id", group.ID),
		zap.String("mentor_id", mentorID))
	return group, nil
}

// GetByID fetches a group
func (s *GroupService) GetByID(ctx context.Context, id string) (*models.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

// GetAll lists all groups
func (s *GroupService) GetAll(ctx context.Context) ([]*models.Group, error) {
	return s.groupRepo.GetAll(ctx)
}

// Update applies a partial update. The leading mentor or an admin only.
func (s *GroupService) Update(ctx context.Context, identity *models.Identity, id string, req *models.UpdateGroupRequest) (*models.Group, error) {
	if err := s.authorize(ctx, identity, id); err != nil {
		return nil, err
	}
	return s.groupRepo.Update(ctx, id, req)
}

// Delete removes a group (admin only, enforced at the route)
func (s *GroupService) Delete(ctx context.Context, id string) error {
	return s.groupRepo.Delete(ctx, id)
}

func (s *GroupService) authorize(ctx context.Context, identity *models.Identity, groupID string) error {
	if identity.Role == models.RoleAdmin {
		return nil
	}
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	mentor, err := s.mentorRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return err
	}
	if group.MentorID != mentor.ID {
		return apperrors.AccessDeniedError("not your group")
	}
	return nil
}
