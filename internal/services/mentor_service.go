package services

import (
	"context"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/repository"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/logger"
	"go.uber.org/zap"
)

// MentorService handles mentor profile management
type MentorService struct {
	mentorRepo repository.MentorRepositoryInterface
	userRepo   repository.UserRepositoryInterface
}

// NewMentorService creates a new mentor service instance
func NewMentorService(
	mentorRepo repository.MentorRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *MentorService {
	return &MentorService{mentorRepo: mentorRepo, userRepo: userRepo}
}

// Create adds a mentor profile. Mentors create their own profile; admins may
// create one for any user via req.UserID.
func (s *MentorService) Create(ctx context.Context, identity *models.Identity, req *models.CreateMentorRequest) (*models.Mentor, error) {
	userID := identity.UserID
	if req.UserID != "" {
		if identity.Role != models.RoleAdmin {
			return nil, apperrors.AccessDeniedError("only admins may create profiles for other users")
		}
		userID = req.UserID
	}

	mentor, err := s.mentorRepo.Create(ctx, userID, req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.ConflictError("user already has a mentor profile")
		}
		return nil, err
	}

	logger.Info("Mentor profile created",
		zap.String("mentor_id", mentor.ID),
		zap.String("user_id", userID))
	return mentor, nil
}

// GetByID fetches a mentor profile
func (s *MentorService) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	return s.mentorRepo.GetByID(ctx, id)
}

// GetAll lists the mentor directory
func (s *MentorService) GetAll(ctx context.Context) ([]*models.Mentor, error) {
	return s.mentorRepo.GetAll(ctx)
}

// Update applies a partial update. Mentors may edit only their own profile;
// admins may edit any.
func (s *MentorService) Update(ctx context.Context, identity *models.Identity, id string, req *models.UpdateMentorRequest) (*models.Mentor, error) {
	if err := s.authorize(ctx, identity, id); err != nil {
		return nil, err
	}
	return s.mentorRepo.Update(ctx, id, req)
}

// Delete removes a mentor profile (admin only, enforced at the route)
func (s *MentorService) Delete(ctx context.Context, id string) error {
	return s.mentorRepo.Delete(ctx, id)
}

func (s *MentorService) authorize(ctx context.Context, identity *models.Identity, mentorID string) error {
	if identity.Role == models.RoleAdmin {
		return nil
	}
	mentor, err := s.mentorRepo.GetByID(ctx, mentorID)
	if err != nil {
		return err
	}
	if mentor.UserID != identity.UserID {
		return apperrors.AccessDeniedError("not your mentor profile")
	}
	return nil
}
