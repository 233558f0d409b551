package services

import (
	"context"
	"fmt"
	"time"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/config"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/repository"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/logger"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/metrics"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/trigger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InviteService handles single-use registration invites
type InviteService struct {
	inviteRepo repository.InviteRepositoryInterface
	notifier   *trigger.Notifier
	config     *config.Config
}

// NewInviteService creates a new invite service instance
func NewInviteService(
	inviteRepo repository.InviteRepositoryInterface,
	notifier *trigger.Notifier,
	cfg *config.Config,
) *InviteService {
	return &InviteService{
		inviteRepo: inviteRepo,
		notifier:   notifier,
		config:     cfg,
	}
}

// Create issues a time-boxed single-use invite and returns the registration
// link. The invite-created event fires the notification webhook when one is
// configured.
func (s *InviteService) Create(ctx context.Context, req *models.CreateInviteRequest) (*models.InviteLinkResponse, error) {
	token := uuid.NewString()
	expiresAt := time.Now().Add(time.Duration(s.config.Invite.TTLHours) * time.Hour)

	invite, err := s.inviteRepo.Create(ctx, req.Email, req.Role, token, expiresAt)
	if err != nil {
		return nil, err
	}

	metrics.InvitesCreated.WithLabelValues(string(req.Role)).Inc()
	logger.Info("Invite created",
		zap.String("invite_id", invite.ID),
		zap.String("role", string(req.Role)))

	link := fmt.Sprintf("%s/register?invite=%s", s.config.Server.BaseURL, token)
	if url := s.config.Notifications.InviteCreatedWebhookURL; url != "" {
		s.notifier.CallAsync(url, "invite.created", map[string]interface{}{
			"email":     invite.Email,
			"role":      string(invite.Role),
			"link":      link,
			"expiresAt": invite.ExpiresAt.Format(time.RFC3339),
		})
	}

	return &models.InviteLinkResponse{Link: link, ExpiresAt: invite.ExpiresAt}, nil
}

// Validate checks a token and returns the email and role it was issued for.
// Consumed and expired invites are rejected without being mutated.
func (s *InviteService) Validate(ctx context.Context, token string) (*models.InviteValidation, error) {
	invite, err := s.inviteRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if invite.Consumed() {
		return nil, apperrors.ConflictError("invite already used")
	}
	if invite.Expired(time.Now()) {
		return nil, apperrors.ConflictError("invite expired")
	}
	return &models.InviteValidation{Email: invite.Email, Role: invite.Role}, nil
}

// List returns all invites, newest first (admin view)
func (s *InviteService) List(ctx context.Context) ([]*models.Invite, error) {
	return s.inviteRepo.List(ctx)
}
