package services

import (
	"context"
	"fmt"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/config"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/repository"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/jwt"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/logger"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/metrics"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/password"
	"go.uber.org/zap"
)

// AuthService handles registration, login and token refresh
type AuthService struct {
	userRepo     repository.UserRepositoryInterface
	inviteRepo   repository.InviteRepositoryInterface
	tokenManager *jwt.TokenManager
	config       *config.Config
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo repository.UserRepositoryInterface,
	inviteRepo repository.InviteRepositoryInterface,
	tokenManager *jwt.TokenManager,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		inviteRepo:   inviteRepo,
		tokenManager: tokenManager,
		config:       cfg,
	}
}

// Register creates a new account and issues a token pair. When an invite
// token is supplied the invite is consumed first and must match the
// submitted email and role. The admin role is never open for
// self-registration; it always requires an invite.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	// There is no open path to the admin role; admin accounts exist only
	// through an invite issued by another admin.
	if req.Role == models.RoleAdmin && req.InviteToken == "" {
		metrics.AuthRegistrations.WithLabelValues("invite_rejected").Inc()
		return nil, apperrors.AccessDeniedError("admin registration requires an invite")
	}

	if req.InviteToken != "" {
		invite, err := s.inviteRepo.Consume(ctx, req.InviteToken)
		if err != nil {
			metrics.AuthRegistrations.WithLabelValues("invite_rejected").Inc()
			return nil, err
		}
		if invite.Email != req.Email || invite.Role != req.Role {
			metrics.AuthRegistrations.WithLabelValues("invite_rejected").Inc()
			return nil, apperrors.ConflictError("invite does not match email and role")
		}
	}

	hash, err := password.Hash(req.Password, s.config.Auth.BcryptCost)
	if err != nil {
		return nil, apperrors.InternalError("failed to hash password")
	}

	user, err := s.userRepo.Create(ctx, req.Email, hash, req.Name, req.Role)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			metrics.AuthRegistrations.WithLabelValues("duplicate").Inc()
			return nil, apperrors.ConflictError("email already registered")
		}
		metrics.AuthRegistrations.WithLabelValues("error").Inc()
		return nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	metrics.AuthRegistrations.WithLabelValues("success").Inc()
	logger.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return &models.AuthResponse{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Login verifies credentials and issues a token pair. Unknown email and
// wrong password produce the same error so the response does not reveal
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			metrics.AuthLogins.WithLabelValues("failed").Inc()
			return nil, apperrors.UnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if !password.Check(req.Password, user.PasswordHash) {
		metrics.AuthLogins.WithLabelValues("failed").Inc()
		return nil, apperrors.UnauthorizedError("invalid credentials")
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	metrics.AuthLogins.WithLabelValues("success").Inc()
	logger.Info("User logged in", zap.String("user_id", user.ID))

	return &models.AuthResponse{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The user
// must still exist; refresh tokens are rotated on every use.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	claims, err := s.tokenManager.VerifyRefreshToken(refreshToken)
	if err != nil {
		metrics.AuthRefreshes.WithLabelValues("rejected").Inc()
		return nil, apperrors.UnauthorizedError("invalid refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			metrics.AuthRefreshes.WithLabelValues("rejected").Inc()
			return nil, apperrors.UnauthorizedError("invalid refresh token")
		}
		return nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	metrics.AuthRefreshes.WithLabelValues("success").Inc()
	return &models.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Profile returns the authenticated user's account record
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *AuthService) issueTokens(user *models.User) (*models.TokenPair, error) {
	access, err := s.tokenManager.IssueAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := s.tokenManager.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}
	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
