package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/config"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/services"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInviteTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{BaseURL: "https://hub.example.com"},
		Invite: config.InviteConfig{TTLHours: 72},
	}
}

func TestInviteService_Create(t *testing.T) {
	inviteRepo := new(MockInviteRepository)
	service := services.NewInviteService(inviteRepo, nil, newInviteTestConfig())

	var issuedToken string
	expiresAt := time.Now().Add(72 * time.Hour)
	inviteRepo.On("Create", mock.Anything, "binh@example.com", models.RoleMentee, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			issuedToken = args.String(3)
		}).
		Return(&models.Invite{
			ID:        "inv-1",
			Email:     "binh@example.com",
			Role:      models.RoleMentee,
			ExpiresAt: expiresAt,
		}, nil)

	resp, err := service.Create(context.Background(), &models.CreateInviteRequest{
		Email: "binh@example.com",
		Role:  models.RoleMentee,
	})

	require.NoError(t, err)
	require.NotEmpty(t, issuedToken)
	_, err = uuid.Parse(issuedToken)
	require.NoError(t, err, "invite token should be a uuid")

	assert.Equal(t, "https://hub.example.com/register?invite="+issuedToken, resp.Link)
	assert.True(t, resp.ExpiresAt.Equal(expiresAt))
	inviteRepo.AssertExpectations(t)
}

func TestInviteService_Create_TokensAreUnique(t *testing.T) {
	inviteRepo := new(MockInviteRepository)
	service := services.NewInviteService(inviteRepo, nil, newInviteTestConfig())

	tokens := make(map[string]struct{})
	inviteRepo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Run(func(args mock.Arguments) {
			tokens[args.String(3)] = struct{}{}
		}).
		Return(&models.Invite{ID: "inv-1", Email: "x@example.com", Role: models.RoleUser}, nil)

	for i := 0; i < 5; i++ {
		_, err := service.Create(context.Background(), &models.CreateInviteRequest{
			Email: "x@example.com",
			Role:  models.RoleUser,
		})
		require.NoError(t, err)
	}

	assert.Len(t, tokens, 5)
}

func TestInviteService_Validate_Success(t *testing.T) {
	inviteRepo := new(MockInviteRepository)
	service := services.NewInviteService(inviteRepo, nil, newInviteTestConfig())

	inviteRepo.On("GetByToken", mock.Anything, "tok-1").Return(&models.Invite{
		ID:        "inv-1",
		Email:     "binh@example.com",
		Role:      models.RoleMentee,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	validation, err := service.Validate(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.Equal(t, "binh@example.com", validation.Email)
	assert.Equal(t, models.RoleMentee, validation.Role)
}

func TestInviteService_Validate_Consumed(t *testing.T) {
	inviteRepo := new(MockInviteRepository)
	service := services.NewInviteService(inviteRepo, nil, newInviteTestConfig())

	consumedAt := time.Now().Add(-time.Hour)
	inviteRepo.On("GetByToken", mock.Anything, "tok-1").Return(&models.Invite{
		ID:         "inv-1",
		Email:      "binh@example.com",
		Role:       models.RoleMentee,
		ExpiresAt:  time.Now().Add(time.Hour),
		ConsumedAt: &consumedAt,
	}, nil)

	_, err := service.Validate(context.Background(), "tok-1")

	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "invite already used")
}

func TestInviteService_Validate_Expired(t *testing.T) {
	inviteRepo := new(MockInviteRepository)
	service := services.NewInviteService(inviteRepo, nil, newInviteTestConfig())

	inviteRepo.On("GetByToken", mock.Anything, "tok-1").Return(&models.Invite{
		ID:        "inv-1",
		Email:     "binh@example.com",
		Role:      models.RoleMentee,
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)

	_, err := service.Validate(context.Background(), "tok-1")

	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "invite expired")
}

func TestInviteService_Validate_UnknownToken(t *testing.T) {
	inviteRepo := new(MockInviteRepository)
	service := services.NewInviteService(inviteRepo, nil, newInviteTestConfig())

	inviteRepo.On("GetByToken", mock.Anything, "tok-missing").
		Return(nil, apperrors.NotFoundError("invite"))

	_, err := service.Validate(context.Background(), "tok-missing")

	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInviteService_Create_ExpiryHonorsTTL(t *testing.T) {
	inviteRepo := new(MockInviteRepository)
	cfg := newInviteTestConfig()
	cfg.Invite.TTLHours = 24
	service := services.NewInviteService(inviteRepo, nil, cfg)

	var passedExpiry time.Time
	inviteRepo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			passedExpiry = args.Get(4).(time.Time)
		}).
		Return(&models.Invite{ID: "inv-1", Email: "x@example.com", Role: models.RoleUser}, nil)

	_, err := service.Create(context.Background(), &models.CreateInviteRequest{
		Email: "x@example.com",
		Role:  models.RoleUser,
	})
	require.NoError(t, err)

	remaining := time.Until(passedExpiry)
	assert.Greater(t, remaining, 23*time.Hour)
	assert.LessOrEqual(t, remaining, 24*time.Hour)
}

func TestInviteService_LinkDoesNotLeakBaseURLSlash(t *testing.T) {
	inviteRepo := new(MockInviteRepository)
	service := services.NewInviteService(inviteRepo, nil, newInviteTestConfig())

	inviteRepo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&models.Invite{ID: "inv-1", Email: "x@example.com", Role: models.RoleUser}, nil)

	resp, err := service.Create(context.Background(), &models.CreateInviteRequest{
		Email: "x@example.com",
		Role:  models.RoleUser,
	})
	require.NoError(t, err)
	assert.False(t, strings.Contains(resp.Link, "//register"))
}
