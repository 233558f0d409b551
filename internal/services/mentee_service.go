package services

import (
	"context"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/repository"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/logger"
	"go.uber.org/zap"
)

// MenteeService handles mentee profile management
type MenteeService struct {
	menteeRepo repository.MenteeRepositoryInterface
}

// NewMenteeService creates a new mentee service instance
func NewMenteeService(menteeRepo repository.MenteeRepositoryInterface) *MenteeService {
	return &MenteeService{menteeRepo: menteeRepo}
}

// Create adds a mentee profile. Mentees create their own; admins may create
// one for any user via req.UserID.
func (s *MenteeService) Create(ctx context.Context, identity *models.Identity, req *models.CreateMenteeRequest) (*models.Mentee, error) {
	userID := identity.UserID
	if req.UserID != "" {
		if identity.Role != models.RoleAdmin {
			return nil, apperrors.AccessDeniedError("only admins may create profiles for other users")
		}
		userID = req.UserID
	}

	mentee, err := s.menteeRepo.Create(ctx, userID, req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.ConflictError("user already has a mentee profile")
		}
		return nil, err
	}

	logger.Info("Mentee profile created",
		zap.String("mentee_id", mentee.ID),
		zap.String("user_id", userID))
	return mentee, nil
}

// GetByID fetches a mentee profile
func (s *MenteeService) GetByID(ctx context.Context, id string) (*models.Mentee, error) {
	return s.menteeRepo.GetByID(ctx, id)
}

// GetAll lists all mentees
func (s *MenteeService) GetAll(ctx context.Context) ([]*models.Mentee, error) {
	return s.menteeRepo.GetAll(ctx)
}

// Update applies a partial update. Mentees may edit only their own profile
// and may not change their application status; mentors and admins may edit
// any mentee.
func (s *MenteeService) Update(ctx context.Context, identity *models.Identity, id string, req *models.UpdateMenteeRequest) (*models.Mentee, error) {
	switch identity.Role {
	case models.RoleMentee:
		mentee, err := s.menteeRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if mentee.UserID != identity.UserID {
			return nil, apperrors.AccessDeniedError("not your mentee profile")
		}
		if req.ApplicationStatus != nil {
			return nil, apperrors.AccessDeniedError("application status is managed by staff")
		}
	case models.RoleMentor, models.RoleAdmin:
		// staff may edit any mentee
	default:
		return nil, apperrors.AccessDeniedError("insufficient role to edit mentee profiles")
	}
	return s.menteeRepo.Update(ctx, id, req)
}

// Delete removes a mentee profile (admin only, enforced at the route)
func (s *MenteeService) Delete(ctx context.Context, id string) error {
	return s.menteeRepo.Delete(ctx, id)
}
