package services

import (
	"context"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/config"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/repository"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/logger"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/metrics"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/trigger"
	"go.uber.org/zap"
)

// SlotService handles availability slot publishing and booking
type SlotService struct {
	slotRepo   repository.SlotRepositoryInterface
	mentorRepo repository.MentorRepositoryInterface
	menteeRepo repository.MenteeRepositoryInterface
	notifier   *trigger.Notifier
	config     *config.Config
}

// NewSlotService creates a new slot service instance
func NewSlotService(
	slotRepo repository.SlotRepositoryInterface,
	mentorRepo repository.MentorRepositoryInterface,
	menteeRepo repository.MenteeRepositoryInterface,
	notifier *trigger.Notifier,
	cfg *config.Config,
) *SlotService {
	return &SlotService{
		slotRepo:   slotRepo,
		mentorRepo: mentorRepo,
		menteeRepo: menteeRepo,
		notifier:   notifier,
		config:     cfg,
	}
}

// Create publishes an availability slot. Mentors publish for themselves;
// admins may publish for any mentor via req.MentorID.
func (s *SlotService) Create(ctx context.Context, identity *models.Identity, req *models.CreateSlotRequest) (*models.Slot, error) {
	mentorID := req.MentorID
	if identity.Role != models.RoleAdmin {
		mentor, err := s.mentorRepo.GetByUserID(ctx, identity.UserID)
		if err != nil {
			return nil, err
		}
		if mentorID != "" && mentorID != mentor.ID {
			return nil, apperrors.AccessDeniedError("mentors may only publish their own slots")
		}
		mentorID = mentor.ID
	}
	if mentorID == "" {
		return nil, apperrors.InvalidInputError("mentorId", "required")
	}

	return s.slotRepo.Create(ctx, mentorID, req)
}

// List returns slots matching the filter
func (s *SlotService) List(ctx context.Context, filter *models.SlotFilter) ([]*models.Slot, error) {
	return s.slotRepo.List(ctx, filter)
}

// Book claims an open slot. Mentees book as themselves; admins may book on
// behalf of any mentee via req.MenteeID. Losing the claim race is a
// conflict, never a double booking.
func (s *SlotService) Book(ctx context.Context, identity *models.Identity, slotID string, req *models.BookSlotRequest) (*models.Slot, error) {
	menteeID := req.MenteeID
	if identity.Role != models.RoleAdmin {
		mentee, err := s.menteeRepo.GetByUserID(ctx, identity.UserID)
		if err != nil {
			return nil, err
		}
		if menteeID != "" && menteeID != mentee.ID {
			return nil, apperrors.AccessDeniedError("mentees book as themselves")
		}
		menteeID = mentee.ID
	}
	if menteeID == "" {
		return nil, apperrors.InvalidInputError("menteeId", "required")
	}

	slot, err := s.slotRepo.Book(ctx, slotID, menteeID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			metrics.SlotBookings.WithLabelValues("conflict").Inc()
		}
		return nil, err
	}

	metrics.SlotBookings.WithLabelValues("success").Inc()
	logger.Info("Slot booked",
		zap.String("slot_id", slot.ID),
		zap.String("mentee_id", menteeID))

	if url := s.config.Notifications.SlotBookedWebhookURL; url != "" {
		s.notifier.CallAsync(url, "slot.booked", map[string]interface{}{
			"slotId":   slot.ID,
			"mentorId": slot.MentorID,
			"menteeId": menteeID,
			"date":     slot.Date,
			"time":     slot.Time,
		})
	}
	return slot, nil
}

// Delete removes an unbooked slot. The owning mentor or an admin only.
func (s *SlotService) Delete(ctx context.Context, identity *models.Identity, slotID string) error {
	if identity.Role == models.RoleAdmin {
		slot, err := s.slotRepo.GetByID(ctx, slotID)
		if err != nil {
			return err
		}
		return s.slotRepo.Delete(ctx, slotID, slot.MentorID)
	}

	mentor, err := s.mentorRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return err
	}
	return s.slotRepo.Delete(ctx, slotID, mentor.ID)
}
