package services

import (
	"context"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/repository"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/logger"
	"go.uber.org/zap"
)

// RelationshipService is the single owner of mentor↔mentee and group↔mentee
// links. All capacity and double-assignment rules are enforced here, through
// the relationship repository's atomic updates.
type RelationshipService struct {
	relRepo    repository.RelationshipRepositoryInterface
	mentorRepo repository.MentorRepositoryInterface
	groupRepo  repository.GroupRepositoryInterface
}

// NewRelationshipService creates a new relationship service instance
func NewRelationshipService(
	relRepo repository.RelationshipRepositoryInterface,
	mentorRepo repository.MentorRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
) *RelationshipService {
	return &RelationshipService{
		relRepo:    relRepo,
		mentorRepo: mentorRepo,
		groupRepo:  groupRepo,
	}
}

// AssignMentee links a mentee to a mentor. Mentors may only manage their own
// roster; admins may manage any.
func (s *RelationshipService) AssignMentee(ctx context.Context, identity *models.Identity, mentorID, menteeID string) error {
	if err := s.authorizeMentor(ctx, identity, mentorID); err != nil {
		return err
	}
	if err := s.relRepo.AssignMentee(ctx, mentorID, menteeID); err != nil {
		return err
	}
	logger.Info("Mentee assigned",
		zap.String("mentor_id", mentorID),
		zap.String("mentee_id", menteeID))
	return nil
}

// UnassignMentee removes a mentee from a mentor's roster
func (s *RelationshipService) UnassignMentee(ctx context.Context, identity *models.Identity, mentorID, menteeID string) error {
	if err := s.authorizeMentor(ctx, identity, mentorID); err != nil {
		return err
	}
	return s.relRepo.UnassignMentee(ctx, mentorID, menteeID)
}

// JoinGroup adds a mentee to a group. The leading mentor or an admin only.
func (s *RelationshipService) JoinGroup(ctx context.Context, identity *models.Identity, groupID, menteeID string) error {
	if err := s.authorizeGroup(ctx, identity, groupID); err != nil {
		return err
	}
	if err := s.relRepo.JoinGroup(ctx, groupID, menteeID); err != nil {
		return err
	}
	logger.Info("Mentee joined group",
		zap.String("group_id", groupID),
		zap.String("mentee_id", menteeID))
	return nil
}

// LeaveGroup removes a mentee from a group
func (s *RelationshipService) LeaveGroup(ctx context.Context, identity *models.Identity, groupID, menteeID string) error {
	if err := s.authorizeGroup(ctx, identity, groupID); err != nil {
		return err
	}
	return s.relRepo.LeaveGroup(ctx, groupID, menteeID)
}

func (s *RelationshipService) authorizeMentor(ctx context.Context, identity *models.Identity, mentorID string) error {
	if identity.Role == models.RoleAdmin {
		return nil
	}
	mentor, err := s.mentorRepo.GetByID(ctx, mentorID)
	if err != nil {
		return err
	}
	if mentor.UserID != identity.UserID {
		return apperrors.AccessDeniedError("not your roster")
	}
	return nil
}

func (s *RelationshipService) authorizeGroup(ctx context.Context, identity *models.Identity, groupID string) error {
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
